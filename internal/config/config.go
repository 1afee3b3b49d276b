package config

import "fmt"

// OutputConfig controls report serialization defaults.
type OutputConfig struct {
	// Format is the default report format: "yaml" or "json".
	Format string `yaml:"format"`
}

// LoggingConfig controls the MCP action log.
type LoggingConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Level     string `yaml:"level"`
	File      string `yaml:"file"`
	MaxSizeMB int    `yaml:"max_size_mb"`
	MaxFiles  int    `yaml:"max_files"`
}

// Config is the handleprobe configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration used when no config file
// exists.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "yaml"},
		Logging: LoggingConfig{
			Enabled:   false,
			Level:     "info",
			MaxSizeMB: 10,
			MaxFiles:  3,
		},
	}
}

// Validate checks field values after loading.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("output.format must be yaml or json, got %q", c.Output.Format)
	}
	if c.Logging.MaxSizeMB < 1 {
		return fmt.Errorf("logging.max_size_mb must be at least 1, got %d", c.Logging.MaxSizeMB)
	}
	if c.Logging.MaxFiles < 1 {
		return fmt.Errorf("logging.max_files must be at least 1, got %d", c.Logging.MaxFiles)
	}
	return nil
}
