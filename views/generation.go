package views

import (
	"github.com/spellforge/client-go/events"
	"github.com/spellforge/client-go/util"
)

// GenerationKind names one generation family.
type GenerationKind string

const (
	KindLLM   GenerationKind = "llm"
	KindImage GenerationKind = "image"
)

// Generation is the UI-agnostic view of one family's current
// generation. Progress is kind-specific: tokens produced for LLM,
// elapsed seconds for image. Nil until the first update arrives.
type Generation struct {
	Kind     GenerationKind
	ID       string
	Status   events.GenerationStatus
	Progress *float64
	// Result holds the text result for LLM, the image URL for image.
	Result string
	Error  string
}

// ActiveGeneration projects one family's slot. The second return is
// false when no generation has been seen for that kind.
func ActiveGeneration(s events.State, kind GenerationKind) (Generation, bool) {
	switch kind {
	case KindLLM:
		g := s.LLM
		if g.Status == events.GenerationNone {
			return Generation{}, false
		}
		var progress *float64
		if g.Tokens != nil {
			progress = util.Ptr(float64(*g.Tokens))
		}
		return Generation{
			Kind: KindLLM, ID: g.ID, Status: g.Status,
			Progress: progress, Result: g.Result, Error: g.Error,
		}, true
	case KindImage:
		g := s.Image
		if g.Status == events.GenerationNone {
			return Generation{}, false
		}
		return Generation{
			Kind: KindImage, ID: g.ID, Status: g.Status,
			Progress: g.ElapsedSeconds, Result: g.ImageURL, Error: g.Error,
		}, true
	}
	return Generation{}, false
}

// ActiveGenerations projects every family that has seen a generation,
// LLM first.
func ActiveGenerations(s events.State) []Generation {
	var out []Generation
	for _, kind := range []GenerationKind{KindLLM, KindImage} {
		if g, ok := ActiveGeneration(s, kind); ok {
			out = append(out, g)
		}
	}
	return out
}
