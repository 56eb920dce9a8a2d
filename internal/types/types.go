package types

// Emphasis 表示 *、**、*** 标记对应的格式
type Emphasis int

const (
	Italic Emphasis = iota + 1
	Bold
	BoldItalic
)

// String returns the emphasis name used by renderers and logs.
func (e Emphasis) String() string {
	switch e {
	case Italic:
		return "italic"
	case Bold:
		return "bold"
	case BoldItalic:
		return "bold-italic"
	default:
		return "none"
	}
}

// EmphasisForRun maps a run of n asterisks (already capped at 3) to its emphasis.
func EmphasisForRun(n int) Emphasis {
	switch n {
	case 1:
		return Italic
	case 2:
		return Bold
	case 3:
		return BoldItalic
	default:
		return 0
	}
}

// Node 是模板解析输出的节点，只有下面四种实现
type Node interface {
	node()
}

// TextRun is literal text.
type TextRun struct {
	Text string
}

// LineBreak is an explicit break produced by "||".
type LineBreak struct{}

// EmphasisGroup wraps the nodes of one formatted chunk.
type EmphasisGroup struct {
	Kind     Emphasis
	Children []Node
}

// Injected carries a non-string replacement value verbatim.
type Injected struct {
	Value any
}

func (TextRun) node()       {}
func (LineBreak) node()     {}
func (EmphasisGroup) node() {}
func (Injected) node()      {}

// Value 是替换表中的值：StringValue 会被递归解析，OpaqueValue 原样注入
type Value interface {
	value()
}

// StringValue is re-parsed for emphasis, line breaks and placeholders.
type StringValue string

// OpaqueValue is inserted as an Injected node without parsing.
type OpaqueValue struct {
	Content any
}

func (StringValue) value() {}
func (OpaqueValue) value() {}

// Replacements maps placeholder keys to values.
type Replacements map[string]Value

// FromMap converts a loosely typed map: strings become StringValue,
// everything else (nil included) becomes OpaqueValue.
func FromMap(m map[string]any) Replacements {
	r := make(Replacements, len(m))
	for k, v := range m {
		switch s := v.(type) {
		case string:
			r[k] = StringValue(s)
		case Value:
			r[k] = s
		default:
			r[k] = OpaqueValue{Content: v}
		}
	}
	return r
}

// Segment 是 Builder 产出的 (text, style) 对，Style 为空表示无样式
type Segment struct {
	Text  string `json:"text" toml:"text"`
	Style string `json:"style,omitempty" toml:"style,omitempty"`
}

// Range is an inclusive numeric interval mapped to a text.
type Range struct {
	Min   float64 `toml:"min"`
	Max   float64 `toml:"max"`
	Text  string  `toml:"text"`
	Style string  `toml:"style,omitempty"`
}

// Contains reports whether Min <= v <= Max.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// MatchRange returns the first range containing v.
func MatchRange(v float64, ranges []Range) (Range, bool) {
	for _, r := range ranges {
		if r.Contains(v) {
			return r, true
		}
	}
	return Range{}, false
}

// Delimiters 占位符的开闭定界符
type Delimiters struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// DefaultDelimiters returns {{ and }}.
func DefaultDelimiters() Delimiters {
	return Delimiters{Open: "{{", Close: "}}"}
}

// OrDefault replaces an empty side with the default delimiter.
func (d Delimiters) OrDefault() Delimiters {
	def := DefaultDelimiters()
	if d.Open == "" {
		d.Open = def.Open
	}
	if d.Close == "" {
		d.Close = def.Close
	}
	return d
}

// MessageEntity 表示一段格式化文本的实体（偏移量与长度按 UTF-16 code units 计算）
type MessageEntity struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// ToDict 将 MessageEntity 转换为 map
func (e MessageEntity) ToDict() map[string]interface{} {
	return map[string]interface{}{
		"type":   e.Type,
		"offset": e.Offset,
		"length": e.Length,
	}
}

// Config 模板解析配置
type Config struct {
	Delimiters Delimiters
	// MaxDepth bounds recursive re-parsing of string replacements.
	MaxDepth int
}

// DefaultMaxDepth is the recursion limit used when Config.MaxDepth is not positive.
const DefaultMaxDepth = 32

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Delimiters: DefaultDelimiters(),
		MaxDepth:   DefaultMaxDepth,
	}
}
