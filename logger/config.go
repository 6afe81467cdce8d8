package logger

import (
	"errors"
	"fmt"
	"slices"
)

// Config is the logging section of a reqkit config file.
type Config struct {
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	Level       string `yaml:"level" mapstructure:"level"`
	Format      string `yaml:"format" mapstructure:"format"`
	Output      string `yaml:"output" mapstructure:"output"`
	NoColor     bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp   bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller      bool   `yaml:"caller" mapstructure:"caller"`
}

// ApplyDefaults fills unset fields. Timestamps are always on.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatConsole
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
	c.Timestamp = true
}

var (
	levels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "disabled"}
	formats = []string{FormatJSON, FormatConsole, FormatPretty}
	outputs = []string{"stdout", "stderr"}
)

// Validate reports every field outside its allowed set.
func (c *Config) Validate() error {
	var errs []error
	check := func(field, got string, allowed []string) {
		if !slices.Contains(allowed, got) {
			errs = append(errs, fmt.Errorf("logging.%s must be one of %v (got: %q)", field, allowed, got))
		}
	}
	check("level", c.Level, levels)
	check("format", c.Format, formats)
	check("output", c.Output, outputs)
	return errors.Join(errs...)
}
