package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/spellforge/client-go/errors"
)

// envPrefix namespaces the SDK's environment variables, e.g.
// SPELLFORGE_STREAM_URL sets stream.url.
const envPrefix = "SPELLFORGE_"

type loaderOptions struct {
	configFile string
	envFile    string
}

// Option customizes Load.
type Option func(*loaderOptions)

// WithConfigFile sets an explicit config file path instead of searching
// the standard locations.
func WithConfigFile(path string) Option {
	return func(o *loaderOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) { o.envFile = path }
}

// Load fills cfg from config.yml, a .env file, and SPELLFORGE_*
// environment variables, then applies defaults and validates. Missing
// files are not an error; a present but unreadable file is.
func Load(cfg *ClientConfig, opts ...Option) error {
	var lo loaderOptions
	for _, opt := range opts {
		opt(&lo)
	}

	v := viper.New()

	configFile := lo.configFile
	if configFile == "" {
		configFile = firstExisting("./config.yml", "./config/config.yml")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.InvalidConfig("read config file " + configFile).WithCause(err)
		}
	}

	envFile := lo.envFile
	if envFile == "" {
		envFile = firstExisting("./.env")
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return errors.InvalidConfig("load env file " + envFile).WithCause(err)
		}
	}

	bindEnv(v)

	if err := v.Unmarshal(cfg); err != nil {
		return errors.InvalidConfig("unmarshal configuration").WithCause(err)
	}

	cfg.ApplyDefaults()
	return cfg.Validate()
}

func firstExisting(paths ...string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// bindEnv maps SPELLFORGE_* variables onto nested config keys. Env
// values take precedence over file values.
func bindEnv(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], envPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(pair[0], envPrefix))
		for _, variant := range keyVariants(key) {
			v.Set(variant, pair[1])
		}
	}
}

// keyVariants expands an underscore key into the nesting splits viper
// may need: "stream_reconnect_delay" also binds "stream.reconnect_delay"
// and "stream.reconnect.delay".
func keyVariants(key string) []string {
	parts := strings.Split(key, "_")
	if len(parts) <= 1 {
		return []string{key}
	}
	variants := []string{key, strings.ReplaceAll(key, "_", ".")}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	return variants
}
