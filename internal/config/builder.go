package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// NewConfigBuilderFrom starts from a copy of an existing Config.
func NewConfigBuilderFrom(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOrdering sets the label ordering.
func (b *ConfigBuilder) WithOrdering(ordering string) *ConfigBuilder {
	b.cfg.Ordering = ordering
	return b
}

// WithAlphabet selects the fixed alphabet.
func (b *ConfigBuilder) WithAlphabet(enabled bool) *ConfigBuilder {
	b.cfg.Alphabet = enabled
	return b
}

// WithLabels sets custom label lists.
func (b *ConfigBuilder) WithLabels(x, y string) *ConfigBuilder {
	b.cfg.XLabels = x
	b.cfg.YLabels = y
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}
