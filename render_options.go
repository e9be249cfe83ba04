package mdblock

// RenderOption configures terminal rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	softWrap    bool
	asciiTables bool
	bullet      string
}

const defaultBullet = "•"

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{bullet: defaultBullet}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.bullet == "" {
		cfg.bullet = defaultBullet
	}
	return cfg
}

// WithSoftWrap enables breaking words longer than the wrap width.
func WithSoftWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.softWrap = enabled
	}
}

// WithASCIITables draws table borders with ASCII instead of box-drawing runes.
func WithASCIITables(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.asciiTables = enabled
	}
}

// WithBullet sets the list item marker. An empty marker keeps the default.
func WithBullet(marker string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.bullet = marker
	}
}
