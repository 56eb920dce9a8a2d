package textcompose

import (
	"sync"

	"github.com/riverfjs/textcompose/internal/types"
)

// Config holds the replacement settings (delimiters, recursion limit).
type Config = types.Config

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default configuration (singleton).
// Treat it as read-only; options work on a copy.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultConfig()
	})
	return defaultConfig
}
