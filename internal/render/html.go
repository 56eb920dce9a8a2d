package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/textcompose/internal/types"
)

var emphasisTags = map[types.Emphasis][2]string{
	types.Italic:     {"<em>", "</em>"},
	types.Bold:       {"<strong>", "</strong>"},
	types.BoldItalic: {"<strong><em>", "</em></strong>"},
}

// HTML renders nodes as an HTML fragment.
//
// Text is escaped. Injected values render recursively when they are nodes or
// segments, verbatim when they are template.HTML, and escaped via fmt.Sprint
// otherwise. A nil Injected value renders nothing.
func HTML(nodes []types.Node) string {
	var sb strings.Builder
	writeHTML(&sb, nodes)
	return sb.String()
}

// Segments renders builder segments as spans carrying their style as a class.
func Segments(segments []types.Segment) string {
	var sb strings.Builder
	writeSegments(&sb, segments)
	return sb.String()
}

func writeHTML(sb *strings.Builder, nodes []types.Node) {
	for _, node := range nodes {
		switch n := node.(type) {
		case types.TextRun:
			writeEscaped(sb, n.Text)
		case types.LineBreak:
			sb.WriteString("<br />")
		case types.EmphasisGroup:
			tags, ok := emphasisTags[n.Kind]
			if !ok {
				writeHTML(sb, n.Children)
				continue
			}
			sb.WriteString(tags[0])
			writeHTML(sb, n.Children)
			sb.WriteString(tags[1])
		case types.Injected:
			writeInjectedHTML(sb, n.Value)
		}
	}
}

func writeInjectedHTML(sb *strings.Builder, value any) {
	switch v := value.(type) {
	case nil:
	case template.HTML:
		sb.WriteString(string(v))
	case []types.Node:
		writeHTML(sb, v)
	case types.Node:
		writeHTML(sb, []types.Node{v})
	case []types.Segment:
		writeSegments(sb, v)
	default:
		writeEscaped(sb, fmt.Sprint(v))
	}
}

func writeSegments(sb *strings.Builder, segments []types.Segment) {
	for _, seg := range segments {
		if seg.Style == "" {
			writeEscaped(sb, seg.Text)
			continue
		}
		sb.WriteString(`<span class="`)
		writeEscaped(sb, seg.Style)
		sb.WriteString(`">`)
		writeEscaped(sb, seg.Text)
		sb.WriteString("</span>")
	}
}

func writeEscaped(sb *strings.Builder, s string) {
	sb.Write(util.EscapeHTML([]byte(s)))
}
