// Package config loads lexctl's CLI defaults: default dialect, color mode,
// diagnostic tab width, and log level.
package config

// Config holds the settings lexctl reads at startup.
type Config struct {
	Dialect  string `koanf:"dialect"`
	Color    string `koanf:"color"`
	TabWidth int    `koanf:"tab_width"`
	LogLevel string `koanf:"log_level"`
	Verbose  bool   `koanf:"verbose"`
}
