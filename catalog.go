package textcompose

import (
	"github.com/riverfjs/textcompose/internal/catalog"
)

// Catalog holds localized templates loaded from go-i18n TOML message files.
type Catalog = catalog.Catalog

// ErrMessageNotFound is returned by Catalog.Template for unknown ids.
var ErrMessageNotFound = catalog.ErrMessageNotFound

// NewCatalog creates a Catalog that logs through Logger.
func NewCatalog(defaultLocale string) *Catalog {
	return catalog.New(defaultLocale, catalog.WithLogger(Logger))
}

// RenderMessage looks up id in c for locale and replaces its placeholders,
// using the same options as Replace.
func RenderMessage(c *Catalog, locale, id string, count any, values Replacements, opts ...Option) []Node {
	tpl, err := c.Template(locale, id, count)
	if err != nil {
		warn("message lookup failed", "id", id, "locale", locale, "err", err)
		return []Node{TextRun{Text: id}}
	}
	return Replace(tpl, values, opts...)
}
