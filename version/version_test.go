package version

import (
	"strings"
	"testing"
)

func TestUserAgent(t *testing.T) {
	ua := UserAgent()
	if !strings.HasPrefix(ua, "spellforge-client-go/") {
		t.Errorf("UserAgent() = %q, want spellforge-client-go/ prefix", ua)
	}
}

func TestGetDefault(t *testing.T) {
	if Get() == "" {
		t.Error("Get() returned empty version")
	}
}
