package replacer

import (
	"strings"

	"github.com/riverfjs/textcompose/internal/types"
)

// Chunk is a run of text between emphasis markers. Format is zero for plain text.
type Chunk struct {
	Text   string
	Format types.Emphasis
}

// SplitFormat splits text into plain and *italic*, **bold**, ***bold-italic*** chunks.
//
// The opening run of asterisks is capped at three and closes at the next
// identical run. An opener without a closer turns the rest of the input,
// including any text before the opener, into one plain chunk.
func SplitFormat(text string) []Chunk {
	chunks := make([]Chunk, 0, 1)
	remaining := text

	for remaining != "" {
		idx := strings.IndexByte(remaining, '*')
		if idx == -1 {
			chunks = append(chunks, Chunk{Text: remaining})
			break
		}

		n := markerLen(remaining[idx:])
		marker := remaining[idx : idx+n]
		after := remaining[idx+n:]
		end := strings.Index(after, marker)
		if end == -1 {
			chunks = append(chunks, Chunk{Text: remaining})
			break
		}

		if idx > 0 {
			chunks = append(chunks, Chunk{Text: remaining[:idx]})
		}
		chunks = append(chunks, Chunk{
			Text:   after[:end],
			Format: types.EmphasisForRun(n),
		})
		remaining = after[end+n:]
	}

	return chunks
}

// markerLen counts leading asterisks, up to 3.
func markerLen(s string) int {
	n := 0
	for n < len(s) && n < 3 && s[n] == '*' {
		n++
	}
	return n
}
