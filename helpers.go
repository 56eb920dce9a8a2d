package textcompose

import (
	"fmt"
	"strings"

	"github.com/riverfjs/textcompose/internal/types"
)

// ByRange returns the text of the first range with Min <= value <= Max,
// or "" when none matches.
func ByRange(value float64, ranges []Range) string {
	if r, ok := types.MatchRange(value, ranges); ok {
		return r.Text
	}
	return ""
}

// Plural returns singular when value is exactly 1, otherwise plural.
func Plural(value float64, singular, plural string) string {
	if value == 1 {
		return singular
	}
	return plural
}

// T joins parts and collapses every whitespace run (newlines included) into a
// single space, trimming both ends. nil parts are skipped.
//
//	textcompose.T(`Die Temperatur
//	    stieg um`, delta, "Grad.")
func T(parts ...any) string {
	var sb strings.Builder
	for _, p := range parts {
		switch v := p.(type) {
		case nil:
		case string:
			sb.WriteString(v)
		default:
			sb.WriteString(fmt.Sprint(v))
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
