package textcompose

import (
	"github.com/riverfjs/textcompose/internal/builder"
)

// Builder 流式拼接带样式的文本片段，片段之间自动插入空格
type Builder = builder.Builder

// BuilderOption configures a Builder.
type BuilderOption = builder.Option

// NewBuilder creates a Builder. Defaults: "." separator, natural precision,
// trailing zeros stripped.
func NewBuilder(opts ...BuilderOption) *Builder {
	return builder.New(opts...)
}

// WithDecimalSeparator sets the decimal separator used for numbers.
func WithDecimalSeparator(sep string) BuilderOption {
	return builder.WithDecimalSeparator(sep)
}

// WithDecimalPlaces formats numbers with a fixed number of fractional digits.
func WithDecimalPlaces(n int) BuilderOption {
	return builder.WithDecimalPlaces(n)
}

// WithTrailingZeros keeps trailing fractional zeros.
func WithTrailingZeros(keep bool) BuilderOption {
	return builder.WithTrailingZeros(keep)
}
