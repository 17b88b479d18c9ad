package pool

// Config controls the size and fill behavior of a pool created via
// NewFromConfig.
type Config struct {
	// Size is the minimum number of bytes the pool must be able to hold,
	// rounded up to a whole number of blocks.
	Size int

	// ZeroFill mirrors the source's fill_with_zero flag; see New.
	ZeroFill bool
}

const defaultSize = blockDataSize

// DefaultConfig returns a Config sized to exactly one block, zero-filled.
func DefaultConfig() Config {
	return Config{Size: defaultSize, ZeroFill: true}
}

// Option is a functional option for customizing a Config.
type Option func(*Config)

// WithSize returns an Option that sets the minimum pool size in bytes.
func WithSize(n int) Option { return func(cfg *Config) { cfg.Size = n } }

// WithZeroFill returns an Option that sets whether pages are guaranteed
// zero-filled on first acquisition.
func WithZeroFill(zeroFill bool) Option { return func(cfg *Config) { cfg.ZeroFill = zeroFill } }

// NewFromConfig creates a Pool from a Config built up via functional
// options, defaulting to DefaultConfig when no options are given.
func NewFromConfig(opts ...Option) (*Pool, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(cfg.Size, cfg.ZeroFill)
}
