package textcompose

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUTF16Len_Mixed 测试混合字符
func TestUTF16Len_Mixed(t *testing.T) {
	// "A📌B" = 1 + 2 + 1 = 4
	assert.Equal(t, 4, UTF16Len("A📌B"))
	assert.Equal(t, 0, UTF16Len(""))
}

func TestRenderEntities_FromTemplate(t *testing.T) {
	nodes := Replace("📌 ***{{n}}***||Fälle", Replacements{"n": StringValue("12")})

	text, entities := RenderEntities(nodes)
	assert.Equal(t, "📌 12\nFälle", text)
	assert.Equal(t, []MessageEntity{
		{Type: "italic", Offset: 3, Length: 2},
		{Type: "bold", Offset: 3, Length: 2},
	}, entities)
	assert.Equal(t, text, RenderText(nodes))
}

func TestRenderHTML_InjectedBuilderOutput(t *testing.T) {
	segments := NewBuilder(WithDecimalSeparator(",")).
		Add("um").
		AddNumber(2.5, "value").
		Add("Grad").
		Get()

	nodes := Replace("Die Temperatur stieg {{delta}}.", Replacements{
		"delta": OpaqueValue{Content: segments},
	})
	assert.Equal(t, `Die Temperatur stieg um<span class="value"> 2,5</span> Grad.`, RenderHTML(nodes))
	assert.Equal(t, `um<span class="value"> 2,5</span> Grad`, RenderSegments(segments))
}

func TestBuilder_Sentence(t *testing.T) {
	b := NewBuilder(WithDecimalPlaces(1), WithTrailingZeros(true))
	b.Add("Im Jahr").
		AddNumber(2024).
		Compare(12, 10, [3]Segment{{Text: "blieb es gleich"}, {Text: "stieg es", Style: "up"}, {Text: "sank es", Style: "down"}}).
		Add("um").
		Quantity(2, "Prozentpunkt", "Prozentpunkte").
		Add(".")

	assert.Equal(t, "Im Jahr 2024.0 stieg es um 2.0 Prozentpunkte.", b.String())
}

func TestRenderMessage(t *testing.T) {
	c := NewCatalog("de")
	require.NoError(t, c.LoadFS(fstest.MapFS{
		"de.toml": {Data: []byte(`
[cases]
one = "**{{n}}** Fall"
other = "**{{n}}** Fälle"
`)},
	}))

	got := RenderMessage(c, "de", "cases", 3, Replacements{"n": StringValue("3")})
	assert.Equal(t, "<strong>3</strong> Fälle", RenderHTML(got))

	got = RenderMessage(c, "de", "unknown", nil, nil)
	assert.Equal(t, []Node{TextRun{Text: "unknown"}}, got)

	_, err := c.Template("de", "unknown", nil)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}
