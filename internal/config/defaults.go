package config

// Default configuration values.
const (
	DefaultDialect  = "i"
	DefaultColor    = "auto"
	DefaultTabWidth = 4
	DefaultLogLevel = "warn"
)

// ApplyDefaults fills in zero-valued fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Dialect == "" {
		c.Dialect = DefaultDialect
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
	if c.TabWidth == 0 {
		c.TabWidth = DefaultTabWidth
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
