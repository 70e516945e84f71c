package stream

import (
	"testing"
	"time"

	"github.com/spellforge/client-go/errors"
	"github.com/spellforge/client-go/util"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{URL: "http://localhost:8080/events"}
	cfg.ApplyDefaults()

	if cfg.AutoConnect == nil || !*cfg.AutoConnect {
		t.Error("AutoConnect should default to true")
	}
	if cfg.ReconnectDelay != 5*time.Second {
		t.Errorf("ReconnectDelay = %s, want 5s", cfg.ReconnectDelay)
	}
	if cfg.SubscriberBuffer != 8 {
		t.Errorf("SubscriberBuffer = %d, want 8", cfg.SubscriberBuffer)
	}
}

func TestConfigDefaultsKeepExplicitValues(t *testing.T) {
	cfg := Config{
		URL:              "http://localhost:8080/events",
		AutoConnect:      util.Ptr(false),
		ReconnectDelay:   time.Second,
		SubscriberBuffer: 32,
	}
	cfg.ApplyDefaults()

	if *cfg.AutoConnect {
		t.Error("explicit AutoConnect=false was overridden")
	}
	if cfg.ReconnectDelay != time.Second || cfg.SubscriberBuffer != 32 {
		t.Errorf("explicit values overridden: %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{URL: "http://localhost:8080/events"}, false},
		{"missing url", Config{}, true},
		{"not a url", Config{URL: "not a url"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.ApplyDefaults()
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && errors.CodeOf(err) != errors.ErrCodeInvalidConfig {
				t.Errorf("CodeOf() = %s, want INVALID_CONFIG", errors.CodeOf(err))
			}
		})
	}
}
