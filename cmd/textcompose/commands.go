package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	tc "github.com/riverfjs/textcompose"
	"github.com/riverfjs/textcompose/internal/config"
)

// Output formats accepted by --format.
const (
	formatHTML     = "html"
	formatText     = "text"
	formatEntities = "entities"
)

type app struct {
	cfg *config.Config

	envFile    string
	open       string
	close      string
	valuesFile string
	format     string
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "textcompose",
		Short:         "Render copy templates with placeholders and emphasis markers",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if a.envFile != "" {
				files = append(files, a.envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			if a.open != "" {
				cfg.Delimiters.Open = a.open
			}
			if a.close != "" {
				cfg.Delimiters.Close = a.close
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "dotenv file to load (default .env)")
	flags.StringVar(&a.open, "open", "", "opening placeholder delimiter")
	flags.StringVar(&a.close, "close", "", "closing placeholder delimiter")
	flags.StringVarP(&a.valuesFile, "values", "v", "", "TOML file with replacement values")
	flags.StringVarP(&a.format, "format", "f", formatHTML, "output format: html, text or entities")

	root.AddCommand(a.renderCommand(), a.messageCommand(), collapseCommand())
	return root
}

func (a *app) renderCommand() *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a template given inline or on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("template") {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read template: %w", err)
				}
				template = strings.TrimRight(string(raw), "\n")
			}

			values, err := loadValues(a.valuesFile)
			if err != nil {
				return err
			}

			nodes := tc.Replace(template, values, a.replaceOptions()...)
			return writeNodes(cmd.OutOrStdout(), nodes, a.format)
		},
	}
	cmd.Flags().StringVarP(&template, "template", "t", "", "template text (default: read stdin)")
	return cmd
}

func (a *app) messageCommand() *cobra.Command {
	var (
		dir    string
		locale string
		count  string
	)

	cmd := &cobra.Command{
		Use:   "message <id>",
		Short: "Render a localized message from a catalog directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if locale == "" {
				locale = a.cfg.Locale
			}

			catalog := tc.NewCatalog(a.cfg.Locale)
			if err := catalog.LoadFS(os.DirFS(dir)); err != nil {
				return err
			}

			values, err := loadValues(a.valuesFile)
			if err != nil {
				return err
			}

			var pluralCount any
			if count != "" {
				pluralCount = count
			}
			nodes := tc.RenderMessage(catalog, locale, args[0], pluralCount, values, a.replaceOptions()...)
			return writeNodes(cmd.OutOrStdout(), nodes, a.format)
		},
	}
	cmd.Flags().StringVarP(&dir, "catalog", "c", ".", "directory with <lang>.toml message files")
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "message locale (default TEXTCOMPOSE_LOCALE)")
	cmd.Flags().StringVarP(&count, "count", "n", "", "plural count")
	return cmd
}

func collapseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "collapse [text...]",
		Short: "Collapse whitespace runs into single spaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := make([]any, 0, len(args))
			for _, arg := range args {
				parts = append(parts, arg, " ")
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), tc.T(parts...))
			return err
		},
	}
}

func (a *app) replaceOptions() []tc.Option {
	return []tc.Option{
		tc.WithDelimiters(a.cfg.Delimiters.Open, a.cfg.Delimiters.Close),
		tc.WithMaxDepth(a.cfg.MaxDepth),
	}
}

// loadValues reads a TOML table of replacement values. Strings are parsed as
// templates; numbers, booleans and dates are injected as-is.
func loadValues(path string) (tc.Replacements, error) {
	if path == "" {
		return tc.Replacements{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	var values map[string]any
	if err := toml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("parse values %s: %w", path, err)
	}
	return tc.FromMap(values), nil
}

func writeNodes(w io.Writer, nodes []tc.Node, format string) error {
	switch format {
	case formatHTML:
		_, err := fmt.Fprintln(w, tc.RenderHTML(nodes))
		return err
	case formatText:
		_, err := fmt.Fprintln(w, tc.RenderText(nodes))
		return err
	case formatEntities:
		text, entities := tc.RenderEntities(nodes)
		dicts := make([]map[string]interface{}, 0, len(entities))
		for _, e := range entities {
			dicts = append(dicts, e.ToDict())
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"text":     text,
			"entities": dicts,
		})
	default:
		return fmt.Errorf("unknown format %q (want html, text or entities)", format)
	}
}
