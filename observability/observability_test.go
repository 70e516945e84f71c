package observability

import "testing"

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("spellforge")
	if cfg.ServiceName != "spellforge" {
		t.Errorf("ServiceName = %q", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" || !cfg.Insecure {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Interval <= 0 {
		t.Error("Interval should default to a positive value")
	}
}

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("spellforge")
	if cfg.ServiceName != "spellforge" {
		t.Errorf("ServiceName = %q", cfg.ServiceName)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("SampleRate = %v, want 1.0", cfg.SampleRate)
	}
}

func TestNoopInstruments(t *testing.T) {
	// Without an installed provider these return usable no-op
	// implementations, never nil.
	if Meter("test") == nil {
		t.Error("Meter() returned nil")
	}
	if Tracer("test") == nil {
		t.Error("Tracer() returned nil")
	}
}
