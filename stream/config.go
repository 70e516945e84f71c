package stream

import (
	"time"

	"github.com/spellforge/client-go/util"
	"github.com/spellforge/client-go/validation"
)

const (
	defaultReconnectDelay   = 5 * time.Second
	defaultSubscriberBuffer = 8
)

// Config configures a stream Manager.
type Config struct {
	// URL is the SSE endpoint.
	URL string `yaml:"url" mapstructure:"url" validate:"required,url"`

	// AutoConnect opens the connection at construction time.
	// Defaults to true.
	AutoConnect *bool `yaml:"auto_connect" mapstructure:"auto_connect"`

	// ReconnectDelay is the fixed delay before a reconnect attempt
	// after a transport failure. Defaults to 5s.
	ReconnectDelay time.Duration `yaml:"reconnect_delay" mapstructure:"reconnect_delay" validate:"gt=0"`

	// HonorServerRetry lets a "retry:" hint from the server override
	// ReconnectDelay for subsequent reconnects.
	HonorServerRetry bool `yaml:"honor_server_retry" mapstructure:"honor_server_retry"`

	// SubscriberBuffer is the channel buffer per subscriber. Updates
	// to a full subscriber are dropped, never blocked on. Defaults to 8.
	SubscriberBuffer int `yaml:"subscriber_buffer" mapstructure:"subscriber_buffer"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.AutoConnect == nil {
		c.AutoConnect = util.Ptr(true)
	}
	if c.ReconnectDelay <= 0 {
		c.ReconnectDelay = defaultReconnectDelay
	}
	if c.SubscriberBuffer <= 0 {
		c.SubscriberBuffer = defaultSubscriberBuffer
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
