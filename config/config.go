package config

import (
	"github.com/spellforge/client-go/api"
	"github.com/spellforge/client-go/errors"
	"github.com/spellforge/client-go/logger"
	"github.com/spellforge/client-go/stream"
	"github.com/spellforge/client-go/validation"
)

// ClientConfig is the full SDK configuration.
type ClientConfig struct {
	// Name identifies the embedding application in logs.
	Name string `yaml:"name" mapstructure:"name"`

	// Environment is the deployment environment.
	Environment string `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`

	// Debug lowers the log level to debug. Implied in development.
	Debug bool `yaml:"debug" mapstructure:"debug"`

	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Stream  stream.Config `yaml:"stream" mapstructure:"stream"`
	API     api.Config    `yaml:"api" mapstructure:"api"`
}

// ApplyDefaults applies defaults to every section.
func (c *ClientConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "spellforge-client"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}

	c.Logging.ApplyDefaults()
	if c.Debug && c.Logging.Level == "info" {
		c.Logging.Level = "debug"
	}
	c.Stream.ApplyDefaults()
	c.API.ApplyDefaults()
}

// Validate validates every section. Returns an INVALID_CONFIG error on
// the first failure.
func (c *ClientConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig(err.Error())
	}
	if err := c.Stream.Validate(); err != nil {
		return err
	}
	return c.API.Validate()
}
