package views

import (
	"time"

	"github.com/spellforge/client-go/events"
)

// ActivityKind classifies what the client is doing right now.
type ActivityKind string

const (
	ActivityDisconnected ActivityKind = "disconnected"
	ActivityConnecting   ActivityKind = "connecting"
	ActivityGenerating   ActivityKind = "generating"
	ActivityIdle         ActivityKind = "idle"
	ActivityStalled      ActivityKind = "stalled"
)

// DefaultStaleThreshold is how long a connected stream may stay silent
// before Activity reports it as stalled.
const DefaultStaleThreshold = 30 * time.Second

// ActivityView is the "current activity" projection.
type ActivityView struct {
	Kind ActivityKind
	// Generating lists the families currently running, LLM first.
	// Empty unless Kind is ActivityGenerating.
	Generating []GenerationKind
}

// Activity projects the current activity. The caller supplies now so
// the projection stays deterministic; staleAfter <= 0 falls back to
// DefaultStaleThreshold.
func Activity(s events.State, now time.Time, staleAfter time.Duration) ActivityView {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleThreshold
	}

	switch s.Connection {
	case events.StateDisconnected:
		return ActivityView{Kind: ActivityDisconnected}
	case events.StateConnecting, events.StateError:
		return ActivityView{Kind: ActivityConnecting}
	}

	var running []GenerationKind
	if s.LLM.Status == events.GenerationRunning {
		running = append(running, KindLLM)
	}
	if s.Image.Status == events.GenerationRunning {
		running = append(running, KindImage)
	}
	if len(running) > 0 {
		return ActivityView{Kind: ActivityGenerating, Generating: running}
	}

	if !s.LastActivity.IsZero() && now.Sub(s.LastActivity) > staleAfter {
		return ActivityView{Kind: ActivityStalled}
	}
	return ActivityView{Kind: ActivityIdle}
}
