package textcompose

// ReplaceOptions holds options for template replacement.
type ReplaceOptions struct {
	Config *Config
}

// Option is a function that configures ReplaceOptions.
type Option func(*ReplaceOptions)

// WithDelimiters sets the placeholder delimiters. Empty sides keep the default.
func WithDelimiters(open, close string) Option {
	return func(opts *ReplaceOptions) {
		opts.Config.Delimiters = Delimiters{Open: open, Close: close}.OrDefault()
	}
}

// WithMaxDepth bounds recursive re-parsing of string replacements.
func WithMaxDepth(depth int) Option {
	return func(opts *ReplaceOptions) {
		opts.Config.MaxDepth = depth
	}
}

// WithConfig replaces the whole configuration. The config is copied.
func WithConfig(config *Config) Option {
	return func(opts *ReplaceOptions) {
		if config == nil {
			return
		}
		cfg := *config
		opts.Config = &cfg
	}
}

// defaultReplaceOptions returns the default replacement options.
func defaultReplaceOptions() *ReplaceOptions {
	cfg := *DefaultConfig()
	return &ReplaceOptions{
		Config: &cfg,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ReplaceOptions {
	options := defaultReplaceOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
