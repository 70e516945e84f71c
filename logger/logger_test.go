package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Level: "debug", Format: "json", Writer: &buf}
	log := New(cfg, "spellforge").WithComponent("stream")

	log.Info("connected", Fields("url", "http://localhost:8080/events"))

	out := buf.String()
	if !strings.Contains(out, `"component":"stream"`) {
		t.Errorf("output missing component field: %s", out)
	}
	if !strings.Contains(out, `"url":"http://localhost:8080/events"`) {
		t.Errorf("output missing custom field: %s", out)
	}
	if !strings.Contains(out, `"message":"connected"`) {
		t.Errorf("output missing message: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Level: "warn", Format: "json", Writer: &buf}
	log := New(cfg, "spellforge")

	log.Debug("dropped")
	log.Info("dropped too")
	log.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("debug/info lines should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn line missing: %s", out)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{Level: "info", Format: "console"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Error("should not panic", ErrorFields("op", errTest{}))
}

type errTest struct{}

func (errTest) Error() string { return "test" }
