// Package config loads the SDK configuration from config.yml, .env
// files, and environment variables, in that order of precedence (later
// sources override earlier ones).
package config
