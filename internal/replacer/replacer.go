package replacer

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/riverfjs/textcompose/internal/types"
)

// lineBreakMarker splits plain text into TextRun / LineBreak nodes.
const lineBreakMarker = "||"

// Options 控制单次替换调用
type Options struct {
	Delimiters types.Delimiters
	MaxDepth   int
	Logger     *log.Logger
}

// Option configures Options.
type Option func(*Options)

// WithDelimiters sets the placeholder delimiters. Empty sides keep the default.
func WithDelimiters(open, close string) Option {
	return func(o *Options) {
		o.Delimiters = types.Delimiters{Open: open, Close: close}
	}
}

// WithMaxDepth bounds recursive re-parsing of string replacements.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// WithLogger sets the logger used to report recursion guard trips.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

type replacer struct {
	values   types.Replacements
	open     string
	close    string
	maxDepth int
	logger   *log.Logger
}

// Replace 解析模板中的 *强调* 标记和 {{key}} 占位符，返回节点序列
//
// 字符串替换值会用同一张替换表完整递归解析；非字符串值作为 Injected 原样插入；
// 未知 key 原样输出 {{key}}。该函数不会失败，畸形输入按字面文本降级。
func Replace(template string, values types.Replacements, opts ...Option) []types.Node {
	o := Options{
		Delimiters: types.DefaultDelimiters(),
		MaxDepth:   types.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = types.DefaultMaxDepth
	}
	d := o.Delimiters.OrDefault()

	r := &replacer{
		values:   values,
		open:     d.Open,
		close:    d.Close,
		maxDepth: o.MaxDepth,
		logger:   o.Logger,
	}
	return r.parse(template, 0)
}

// parse runs both passes over text.
func (r *replacer) parse(text string, depth int) []types.Node {
	nodes := make([]types.Node, 0)
	for _, chunk := range SplitFormat(text) {
		inner := r.replaceTokens(chunk.Text, depth)
		if chunk.Format == 0 {
			nodes = append(nodes, inner...)
			continue
		}
		nodes = append(nodes, types.EmphasisGroup{Kind: chunk.Format, Children: inner})
	}
	return nodes
}

// replaceTokens expands placeholders inside one chunk.
func (r *replacer) replaceTokens(text string, depth int) []types.Node {
	var nodes []types.Node
	remaining := text

	for remaining != "" {
		start := strings.Index(remaining, r.open)
		if start == -1 {
			nodes = appendText(nodes, remaining)
			break
		}

		keyStart := start + len(r.open)
		end := strings.Index(remaining[keyStart:], r.close)
		if end == -1 {
			nodes = appendText(nodes, remaining)
			break
		}
		end += keyStart

		nodes = appendText(nodes, remaining[:start])
		nodes = r.resolve(nodes, remaining[keyStart:end], depth)
		remaining = remaining[end+len(r.close):]
	}

	return nodes
}

func (r *replacer) resolve(nodes []types.Node, key string, depth int) []types.Node {
	literal := types.TextRun{Text: r.open + key + r.close}

	value, ok := r.values[key]
	if !ok {
		return append(nodes, literal)
	}

	switch v := value.(type) {
	case types.StringValue:
		if depth >= r.maxDepth {
			if r.logger != nil {
				r.logger.Warn("placeholder recursion limit reached", "key", key, "depth", depth)
			}
			return append(nodes, literal)
		}
		return append(nodes, r.parse(string(v), depth+1)...)
	case types.OpaqueValue:
		return append(nodes, types.Injected{Value: v.Content})
	default:
		// present but nil
		return append(nodes, types.Injected{})
	}
}

// appendText splits text on "||" and appends the pieces. Empty runs are dropped.
func appendText(nodes []types.Node, text string) []types.Node {
	for i, part := range strings.Split(text, lineBreakMarker) {
		if i > 0 {
			nodes = append(nodes, types.LineBreak{})
		}
		if part != "" {
			nodes = append(nodes, types.TextRun{Text: part})
		}
	}
	return nodes
}
