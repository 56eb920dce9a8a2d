package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"umlaut", "Größe", 5},
		{"bmp emoji", "☑️", 2},
		{"supplementary emoji", "📌", 2},
		{"mixed", "A📌B", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UTF16Len(tt.in))
		})
	}
}

func TestTextBuffer(t *testing.T) {
	tb := New()
	tb.Write("ab")
	tb.Write("📌")

	assert.Equal(t, "ab📌", tb.String())
	assert.Equal(t, 4, tb.UTF16Offset())
}
