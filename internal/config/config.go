package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/riverfjs/textcompose/internal/types"
)

// Environment variables read by Load.
const (
	EnvLocale   = "TEXTCOMPOSE_LOCALE"
	EnvOpen     = "TEXTCOMPOSE_OPEN"
	EnvClose    = "TEXTCOMPOSE_CLOSE"
	EnvMaxDepth = "TEXTCOMPOSE_MAX_DEPTH"
)

// Config is the CLI configuration.
type Config struct {
	Locale     string
	Delimiters types.Delimiters
	MaxDepth   int
}

// Load reads configuration from the environment (and an optional .env file)
// and validates it.
func Load(envFiles ...string) (*Config, error) {
	// .env is optional when the variables come from the environment.
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		Locale: os.Getenv(EnvLocale),
		Delimiters: types.Delimiters{
			Open:  os.Getenv(EnvOpen),
			Close: os.Getenv(EnvClose),
		},
		MaxDepth: types.DefaultMaxDepth,
	}

	if raw := strings.TrimSpace(os.Getenv(EnvMaxDepth)); raw != "" {
		depth, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config: %s must be an integer (%q): %w", EnvMaxDepth, raw, err)
		}
		cfg.MaxDepth = depth
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fills defaults and checks the locale, delimiters and depth.
// Call it again after overriding fields loaded by Load.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "en"
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: %s is not a valid language tag (%q): %w", EnvLocale, c.Locale, err)
	}

	c.Delimiters = c.Delimiters.OrDefault()
	if c.Delimiters.Open == c.Delimiters.Close {
		return fmt.Errorf("config: open and close delimiters must differ (both %q)", c.Delimiters.Open)
	}

	if c.MaxDepth <= 0 {
		return fmt.Errorf("config: %s must be positive, got %d", EnvMaxDepth, c.MaxDepth)
	}
	return nil
}
