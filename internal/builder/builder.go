package builder

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/riverfjs/textcompose/internal/types"
)

// Option configures a Builder.
type Option func(*Builder)

// WithDecimalSeparator replaces "." in formatted numbers.
func WithDecimalSeparator(sep string) Option {
	return func(b *Builder) {
		b.decimalSeparator = sep
	}
}

// WithDecimalPlaces formats numbers with exactly n fractional digits
// (before trailing zeros are stripped).
func WithDecimalPlaces(n int) Option {
	return func(b *Builder) {
		if n < 0 {
			n = 0
		}
		b.decimalPlaces = n
		b.fixedPlaces = true
	}
}

// WithTrailingZeros keeps zeros after the decimal point.
func WithTrailingZeros(keep bool) Option {
	return func(b *Builder) {
		b.trailingZeros = keep
	}
}

// Builder accumulates styled text segments and inserts the spaces between them.
//
// A Builder is not safe for concurrent use; keep each instance on one goroutine.
type Builder struct {
	segments []types.Segment

	decimalSeparator string
	decimalPlaces    int
	fixedPlaces      bool
	trailingZeros    bool
}

// New creates an empty Builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		segments:         make([]types.Segment, 0),
		decimalSeparator: ".",
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add appends text with an optional style tag.
func (b *Builder) Add(text string, style ...string) *Builder {
	b.push(text, firstStyle(style))
	return b
}

// AddNumber appends a formatted number.
func (b *Builder) AddNumber(value float64, style ...string) *Builder {
	b.push(b.FormatNumber(value), firstStyle(style))
	return b
}

// Quantity appends the number followed by its singular or plural label.
func (b *Builder) Quantity(value float64, singular, plural string, style ...string) *Builder {
	s := firstStyle(style)
	b.push(b.FormatNumber(value), s)
	b.push(choose(value, singular, plural), s)
	return b
}

// SingularOrPlural appends only the label.
func (b *Builder) SingularOrPlural(value float64, singular, plural string, style ...string) *Builder {
	b.push(choose(value, singular, plural), firstStyle(style))
	return b
}

// DecideByRange appends the text of the first range containing value, using
// that range's style. Nothing is appended when no range matches.
func (b *Builder) DecideByRange(value float64, ranges []types.Range) *Builder {
	if r, ok := types.MatchRange(value, ranges); ok {
		b.push(r.Text, r.Style)
	}
	return b
}

// CompareStrings appends templates[0] when left == right, otherwise templates[1].
func (b *Builder) CompareStrings(left, right string, templates [2]string, style ...string) *Builder {
	if left == right {
		b.push(templates[0], firstStyle(style))
	} else {
		b.push(templates[1], firstStyle(style))
	}
	return b
}

// Compare appends templates[0] when left == right, templates[1] when
// left > right and templates[2] otherwise.
func (b *Builder) Compare(left, right float64, templates [3]types.Segment) *Builder {
	idx := 2
	switch {
	case left == right:
		idx = 0
	case left > right:
		idx = 1
	}
	b.push(templates[idx].Text, templates[idx].Style)
	return b
}

// Get returns the accumulated segments. The slice is shared with the
// Builder, not copied, and the Builder keeps accumulating after Get.
func (b *Builder) Get() []types.Segment {
	return b.segments
}

// String concatenates the text of all segments.
func (b *Builder) String() string {
	var sb strings.Builder
	for _, seg := range b.segments {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// FormatNumber renders value using the configured separator and precision.
func (b *Builder) FormatNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}

	var str string
	switch {
	case b.fixedPlaces:
		// Round the exact binary value, so 1.005 gives "1.00".
		places := int32(b.decimalPlaces)
		str = decimal.NewFromFloatWithExponent(value, -places).StringFixed(places)
	case useExponent(value):
		return strings.Replace(exponentForm(value), ".", b.decimalSeparator, 1)
	default:
		str = decimal.NewFromFloat(value).String()
	}
	if !b.trailingZeros {
		str = stripTrailingZeros(str)
	}
	return strings.Replace(str, ".", b.decimalSeparator, 1)
}

// useExponent reports whether the natural form switches to exponent notation.
func useExponent(value float64) bool {
	abs := math.Abs(value)
	return abs >= 1e21 || (abs != 0 && abs < 1e-6)
}

// exponentForm renders the shortest mantissa with an unpadded exponent: 1e+21, 1.5e-7.
func exponentForm(value float64) string {
	str := strconv.FormatFloat(value, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(str, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

func (b *Builder) push(text, style string) {
	if n := len(b.segments); n > 0 && needsSpace(b.segments[n-1].Text, text) {
		text = " " + text
	}
	b.segments = append(b.segments, types.Segment{Text: text, Style: style})
}

// needsSpace decides whether next gets a leading space after prev.
func needsSpace(prev, next string) bool {
	if r, _ := utf8.DecodeRuneInString(next); next != "" {
		if isSpace(r) || strings.ContainsRune(".,;:!?)]", r) {
			return false
		}
	}
	trimmed := strings.TrimRightFunc(prev, isSpace)
	return !strings.HasSuffix(trimmed, "(") && !strings.HasSuffix(trimmed, "[")
}

// isSpace matches the whitespace class of JavaScript regular expressions:
// U+FEFF counts, U+0085 does not.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// stripTrailingZeros removes zeros after the decimal point and then a bare point.
// Integers are left alone.
func stripTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func choose(value float64, singular, plural string) string {
	if value == 1 {
		return singular
	}
	return plural
}

func firstStyle(style []string) string {
	if len(style) == 0 {
		return ""
	}
	return style[0]
}
