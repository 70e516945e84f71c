package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spellforge/client-go/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const validYAML = `
name: spellforge-test
environment: staging
logging:
  level: warn
  format: json
stream:
  url: http://localhost:8080/events
  reconnect_delay: 2s
api:
  base_url: http://localhost:8080
`

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "config.yml", validYAML)

	var cfg ClientConfig
	if err := Load(&cfg, WithConfigFile(file)); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Name != "spellforge-test" || cfg.Environment != "staging" {
		t.Errorf("identity = %q/%q", cfg.Name, cfg.Environment)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Stream.URL != "http://localhost:8080/events" {
		t.Errorf("stream url = %q", cfg.Stream.URL)
	}
	if cfg.Stream.ReconnectDelay != 2*time.Second {
		t.Errorf("reconnect delay = %s, want 2s", cfg.Stream.ReconnectDelay)
	}
	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("api base url = %q", cfg.API.BaseURL)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "config.yml", `
stream:
  url: http://localhost:8080/events
api:
  base_url: http://localhost:8080
`)

	var cfg ClientConfig
	if err := Load(&cfg, WithConfigFile(file)); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Name != "spellforge-client" {
		t.Errorf("name = %q, want default", cfg.Name)
	}
	if cfg.Environment != "development" || !cfg.Debug {
		t.Errorf("environment = %q debug = %v", cfg.Environment, cfg.Debug)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("development should imply debug logging, got %q", cfg.Logging.Level)
	}
	if cfg.Stream.ReconnectDelay != 5*time.Second {
		t.Errorf("reconnect delay = %s, want default 5s", cfg.Stream.ReconnectDelay)
	}
	if cfg.Stream.AutoConnect == nil || !*cfg.Stream.AutoConnect {
		t.Error("auto connect should default to true")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "config.yml", validYAML)
	t.Setenv("SPELLFORGE_STREAM_URL", "http://override:9090/events")

	var cfg ClientConfig
	if err := Load(&cfg, WithConfigFile(file)); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Stream.URL != "http://override:9090/events" {
		t.Errorf("stream url = %q, env should override the file", cfg.Stream.URL)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", validYAML)
	envFile := writeFile(t, dir, ".env", "SPELLFORGE_API_BASE_URL=http://dotenv:7070\n")

	var cfg ClientConfig
	if err := Load(&cfg, WithConfigFile(cfgFile), WithEnvFile(envFile)); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.BaseURL != "http://dotenv:7070" {
		t.Errorf("api base url = %q, want the .env value", cfg.API.BaseURL)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		yaml string
	}{
		{"missing stream url", `
api:
  base_url: http://localhost:8080
`},
		{"bad environment", `
environment: qa
stream:
  url: http://localhost:8080/events
api:
  base_url: http://localhost:8080
`},
		{"bad log level", `
logging:
  level: loud
stream:
  url: http://localhost:8080/events
api:
  base_url: http://localhost:8080
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := writeFile(t, dir, "config.yml", tt.yaml)
			var cfg ClientConfig
			err := Load(&cfg, WithConfigFile(file))
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if errors.CodeOf(err) != errors.ErrCodeInvalidConfig {
				t.Errorf("CodeOf() = %s, want INVALID_CONFIG", errors.CodeOf(err))
			}
		})
	}
}

func TestKeyVariants(t *testing.T) {
	got := keyVariants("stream_reconnect_delay")
	want := map[string]bool{
		"stream_reconnect_delay": false,
		"stream.reconnect.delay": false,
		"stream.reconnect_delay": false,
	}
	for _, v := range got {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for v, seen := range want {
		if !seen {
			t.Errorf("variant %q missing from %v", v, got)
		}
	}
}
