package api

import (
	"time"

	"github.com/spellforge/client-go/resilience"
	"github.com/spellforge/client-go/validation"
)

const defaultTimeout = 30 * time.Second

// Config configures the REST client.
type Config struct {
	// BaseURL is the backend's base URL, prepended to request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Retry configures retry behavior for retryable failures.
	// Defaults to resilience.DefaultRetryConfig; set MaxAttempts to 1
	// to disable.
	Retry *resilience.RetryConfig `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Retry == nil {
		cfg := resilience.DefaultRetryConfig()
		c.Retry = &cfg
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
