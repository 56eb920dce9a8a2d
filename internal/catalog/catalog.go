package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	i18ntemplate "github.com/nicksnyder/go-i18n/v2/i18n/template"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/riverfjs/textcompose/internal/replacer"
	"github.com/riverfjs/textcompose/internal/types"
)

// ErrMessageNotFound is returned by Template when no locale has the message.
var ErrMessageNotFound = errors.New("catalog: message not found")

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for load failures and missing messages.
func WithLogger(logger *log.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// Catalog holds localized templates in go-i18n message files.
//
// Message bodies are returned untouched (no Go template execution), so the
// {{key}} placeholders stay in place for Replace.
type Catalog struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *log.Logger
}

// New builds an empty Catalog. An unparsable defaultLocale falls back to English.
func New(defaultLocale string, opts ...Option) *Catalog {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	c := &Catalog{
		bundle:          bundle,
		defaultLanguage: tag,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err != nil {
		c.warn("invalid default locale, using English", "locale", defaultLocale, "err", err)
	}
	return c
}

// DefaultLanguage returns the fallback language.
func (c *Catalog) DefaultLanguage() language.Tag {
	return c.defaultLanguage
}

// Languages returns every language with loaded messages.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// LoadFS loads message files matching patterns (default "*.toml") from fsys.
// File names carry the language: "active.de.toml", "de.toml".
// Every file is attempted; failures are joined into the returned error.
func (c *Catalog) LoadFS(fsys fs.FS, patterns ...string) error {
	if len(patterns) == 0 {
		patterns = []string{"*.toml"}
	}

	var errs []error
	for _, pattern := range patterns {
		files, err := fs.Glob(fsys, pattern)
		if err != nil {
			errs = append(errs, fmt.Errorf("catalog: bad pattern %q: %w", pattern, err))
			continue
		}
		for _, file := range files {
			if _, err := c.bundle.LoadMessageFileFS(fsys, file); err != nil {
				c.warn("failed to load message file", "file", path.Base(file), "err", err)
				errs = append(errs, fmt.Errorf("catalog: load %s: %w", file, err))
			}
		}
	}
	return errors.Join(errs...)
}

// AddMessages registers messages for a locale directly.
func (c *Catalog) AddMessages(locale string, messages ...*i18n.Message) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog: invalid locale %q: %w", locale, err)
	}
	return c.bundle.AddMessages(tag, messages...)
}

// Template returns the raw template for id in locale, falling back to the
// default language. count selects the CLDR plural form; nil means "other".
func (c *Catalog) Template(locale, id string, count any) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: empty id", ErrMessageNotFound)
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, c.defaultLanguage.String())

	localizer := i18n.NewLocalizer(c.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		PluralCount:    pluralCount(count),
		TemplateParser: i18ntemplate.IdentityParser{},
	})
	if err != nil {
		if msg == "" {
			return "", fmt.Errorf("%w: %s (locales=%v): %v", ErrMessageNotFound, id, languages, err)
		}
		// best effort: default-language fallback or a missing plural form
		c.debug("localize fell back", "id", id, "err", err)
	}
	return msg, nil
}

// pluralCount converts floats to strings, which go-i18n requires for
// fractional operands.
func pluralCount(count any) any {
	switch v := count.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return count
	}
}

// Render localizes id and runs the template through Replace. A missing
// message renders the id itself as literal text.
func (c *Catalog) Render(locale, id string, count any, values types.Replacements, opts ...replacer.Option) []types.Node {
	tpl, err := c.Template(locale, id, count)
	if err != nil {
		c.warn("message lookup failed", "id", id, "locale", locale, "err", err)
		return []types.Node{types.TextRun{Text: id}}
	}
	if c.logger != nil {
		opts = append([]replacer.Option{replacer.WithLogger(c.logger)}, opts...)
	}
	return replacer.Replace(tpl, values, opts...)
}

func (c *Catalog) warn(msg string, keyvals ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, keyvals...)
	}
}

func (c *Catalog) debug(msg string, keyvals ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, keyvals...)
	}
}
