package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time using -ldflags. Defaults to "dev".
var Version = "dev"

// Get returns the SDK version, falling back to module build info
// when no explicit version was linked in.
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// UserAgent returns the User-Agent string sent by SDK clients.
func UserAgent() string {
	return fmt.Sprintf("spellforge-client-go/%s", Get())
}
