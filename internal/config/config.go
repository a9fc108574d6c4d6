// Package config handles m3dtool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Decode  DecodeConfig  `yaml:"decode"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// DecodeConfig holds decoder behavior settings.
type DecodeConfig struct {
	// ValidateIndices runs index cross-reference validation after every
	// decode, rejecting scenes whose faces or material groups point
	// outside their arrays.
	ValidateIndices bool `yaml:"validate_indices"`
}

// OutputConfig holds report formatting settings.
type OutputConfig struct {
	MaxListed int  `yaml:"max_listed"` // cap per-item detail lines, 0 = all
	Verbose   bool `yaml:"verbose"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Decode: DecodeConfig{
			ValidateIndices: true,
		},
		Output: OutputConfig{
			MaxListed: 20,
			Verbose:   false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
