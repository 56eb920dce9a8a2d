package textcompose

import (
	"github.com/riverfjs/textcompose/internal/replacer"
	"github.com/riverfjs/textcompose/internal/types"
)

// 导出类型别名
type (
	Node          = types.Node
	TextRun       = types.TextRun
	LineBreak     = types.LineBreak
	EmphasisGroup = types.EmphasisGroup
	Injected      = types.Injected
	Emphasis      = types.Emphasis

	Value        = types.Value
	StringValue  = types.StringValue
	OpaqueValue  = types.OpaqueValue
	Replacements = types.Replacements

	Segment       = types.Segment
	Range         = types.Range
	Delimiters    = types.Delimiters
	MessageEntity = types.MessageEntity

	Chunk = replacer.Chunk
)

const (
	Italic     = types.Italic
	Bold       = types.Bold
	BoldItalic = types.BoldItalic
)

// FromMap converts a map[string]any into Replacements.
func FromMap(m map[string]any) Replacements {
	return types.FromMap(m)
}
