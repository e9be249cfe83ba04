package mdblock

// DefaultMaxBytes caps how much input ParseReader accepts.
const DefaultMaxBytes int64 = 4 << 20

// ParseOption configures ParseReader and HTTPParse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	maxBytes    int64
	strict      bool
	frontMatter bool
	normalize   bool
}

func defaultParseConfig() parseConfig {
	return parseConfig{maxBytes: DefaultMaxBytes}
}

func newParseConfig(opts []ParseOption) parseConfig {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithMaxBytes sets the input ceiling. Values <= 0 disable the limit.
func WithMaxBytes(n int64) ParseOption {
	return func(cfg *parseConfig) {
		cfg.maxBytes = n
	}
}

// WithStrictInput rejects invalid UTF-8 and binary input instead of
// silently dropping offending bytes.
func WithStrictInput(enabled bool) ParseOption {
	return func(cfg *parseConfig) {
		cfg.strict = enabled
	}
}

// WithFrontMatter strips a leading YAML, TOML or JSON front-matter block.
func WithFrontMatter(strip bool) ParseOption {
	return func(cfg *parseConfig) {
		cfg.frontMatter = strip
	}
}

// WithNormalize applies Unicode NFC normalization before parsing.
func WithNormalize(enabled bool) ParseOption {
	return func(cfg *parseConfig) {
		cfg.normalize = enabled
	}
}
