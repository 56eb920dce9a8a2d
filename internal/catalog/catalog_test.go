package catalog

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/riverfjs/textcompose/internal/types"
)

var messages = fstest.MapFS{
	"active.en.toml": {Data: []byte(`
greeting = "Hello **{{name}}**"
only_en = "English only"

[days]
one = "{{n}} day"
other = "{{n}} days"
`)},
	"active.de.toml": {Data: []byte(`
greeting = "Hallo **{{name}}**"

[days]
one = "{{n}} Tag"
other = "{{n}} Tage"
`)},
}

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := New("en")
	require.NoError(t, c.LoadFS(messages))
	return c
}

func TestNew_InvalidLocaleFallsBackToEnglish(t *testing.T) {
	var buf bytes.Buffer
	c := New("!!", WithLogger(log.New(&buf)))
	assert.Equal(t, language.English, c.DefaultLanguage())
	assert.Contains(t, buf.String(), "invalid default locale")
}

func TestCatalog_Template(t *testing.T) {
	c := newCatalog(t)

	tests := []struct {
		name   string
		locale string
		id     string
		count  any
		want   string
	}{
		{"plain", "de", "greeting", nil, "Hallo **{{name}}**"},
		{"plural one", "de", "days", 1, "{{n}} Tag"},
		{"plural other", "de", "days", 3, "{{n}} Tage"},
		{"plural zero", "en", "days", 0, "{{n}} days"},
		{"fractional count", "de", "days", 1.5, "{{n}} Tage"},
		{"no count means other", "en", "days", nil, "{{n}} days"},
		{"unknown locale uses default", "fr", "greeting", nil, "Hello **{{name}}**"},
		{"missing in locale falls back", "de", "only_en", nil, "English only"},
		{"empty locale", "", "greeting", nil, "Hello **{{name}}**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Template(tt.locale, tt.id, tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_TemplateNotFound(t *testing.T) {
	c := newCatalog(t)

	_, err := c.Template("de", "nope", nil)
	assert.ErrorIs(t, err, ErrMessageNotFound)

	_, err = c.Template("de", "", nil)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestCatalog_Render(t *testing.T) {
	c := newCatalog(t)

	got := c.Render("de", "greeting", nil, types.Replacements{"name": types.StringValue("Welt")})
	assert.Equal(t, []types.Node{
		types.TextRun{Text: "Hallo "},
		types.EmphasisGroup{Kind: types.Bold, Children: []types.Node{types.TextRun{Text: "Welt"}}},
	}, got)

	got = c.Render("de", "days", 2, types.Replacements{"n": types.StringValue("2")})
	assert.Equal(t, []types.Node{types.TextRun{Text: "2"}, types.TextRun{Text: " Tage"}}, got)
}

func TestCatalog_RenderMissingMessage(t *testing.T) {
	var buf bytes.Buffer
	c := New("en", WithLogger(log.New(&buf)))
	require.NoError(t, c.LoadFS(messages))

	got := c.Render("en", "missing.id", nil, nil)
	assert.Equal(t, []types.Node{types.TextRun{Text: "missing.id"}}, got)
	assert.Contains(t, buf.String(), "message lookup failed")
}

func TestCatalog_LoadFSKeepsGoodFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"active.en.toml": {Data: []byte(`ok = "fine"`)},
		"active.de.toml": {Data: []byte(`broken = `)},
	}

	c := New("en")
	err := c.LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "active.de.toml")

	got, err := c.Template("en", "ok", nil)
	require.NoError(t, err)
	assert.Equal(t, "fine", got)
}

func TestCatalog_AddMessages(t *testing.T) {
	c := New("en")
	require.NoError(t, c.AddMessages("nl", &i18n.Message{ID: "hi", Other: "Hoi {{naam}}"}))

	got, err := c.Template("nl", "hi", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hoi {{naam}}", got)

	assert.Error(t, c.AddMessages("??", &i18n.Message{ID: "x", Other: "y"}))
}
