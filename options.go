package sitemark

// RenderOptions holds options for a render pass.
type RenderOptions struct {
	Class  string
	Config *RenderConfig
}

// Option is a function that configures RenderOptions.
type Option func(*RenderOptions)

// WithClass sets the styling class passed through to the outermost container.
func WithClass(class string) Option {
	return func(opts *RenderOptions) {
		opts.Class = class
	}
}

// WithConfig sets a custom RenderConfig. A nil config keeps the default.
func WithConfig(config *RenderConfig) Option {
	return func(opts *RenderOptions) {
		if config != nil {
			opts.Config = config
		}
	}
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *RenderOptions {
	options := defaultRenderOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
