package channel

import (
	"fmt"
	"time"

	"github.com/kbukum/reqkit/security"
	"github.com/kbukum/reqkit/validation"
	"github.com/kbukum/reqkit/version"
)

// Drivers for live channels.
const (
	DriverHTTP  = "http"
	DriverResty = "resty"
)

const defaultTimeout = 30 * time.Second

// Config configures a live channel.
type Config struct {
	// Name identifies the channel in logs, spans and metrics.
	Name string `yaml:"name" mapstructure:"name" validate:"required"`

	// Driver selects the client library: "http" (default) or "resty".
	Driver string `yaml:"driver" mapstructure:"driver" validate:"oneof=http resty"`

	// Timeout bounds one send, including reading the body. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// UserAgent is sent when the request has none. Defaults to reqkit/<version>.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// HTTP2 enables HTTP/2 over TLS.
	HTTP2 bool `yaml:"http2" mapstructure:"http2"`

	TLS *security.TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "http"
	}
	if c.Driver == "" {
		c.Driver = DriverHTTP
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	if err := c.TLS.Validate(); err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	return nil
}
