package textcompose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByRange(t *testing.T) {
	ranges := []Range{
		{Min: 0, Max: 10, Text: "low"},
		{Min: 11, Max: 20, Text: "high"},
	}

	tests := []struct {
		value float64
		want  string
	}{
		{0, "low"},
		{10, "low"},
		{10.5, ""},
		{11, "high"},
		{20, "high"},
		{21, ""},
		{-1, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ByRange(tt.value, ranges), "value %v", tt.value)
	}
}

func TestByRange_FirstMatchWins(t *testing.T) {
	ranges := []Range{{Min: 0, Max: 5, Text: "a"}, {Min: 3, Max: 8, Text: "b"}}
	assert.Equal(t, "a", ByRange(4, ranges))
	assert.Equal(t, "", ByRange(4, nil))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "Tag", Plural(1, "Tag", "Tage"))
	assert.Equal(t, "Tage", Plural(2, "Tag", "Tage"))
	assert.Equal(t, "Tage", Plural(0, "Tag", "Tage"))
	assert.Equal(t, "Tage", Plural(1.5, "Tag", "Tage"))
}

func TestT(t *testing.T) {
	tests := []struct {
		name  string
		parts []any
		want  string
	}{
		{"empty", nil, ""},
		{"collapses newlines", []any{"  Die Temperatur\n\t  stieg\n"}, "Die Temperatur stieg"},
		{"interpolates", []any{"um ", 2.5, " Grad"}, "um 2.5 Grad"},
		{"nil skipped", []any{"a ", nil, " b"}, "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, T(tt.parts...))
		})
	}
}
