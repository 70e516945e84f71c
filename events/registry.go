package events

import (
	"sort"

	"github.com/spellforge/client-go/errors"
)

// Entry pairs one wire event type with its decode and fold functions.
// Entries are immutable after registry construction.
type Entry struct {
	Type   Type
	Decode DecodeFunc
	Fold   FoldFunc
}

// Registry is the dispatch table from wire event type to Entry.
type Registry struct {
	entries map[Type]Entry
}

// NewRegistry builds the full event table and validates it. A missing
// decode or fold function is a configuration error and fails here, at
// startup, rather than dropping events silently at runtime.
func NewRegistry() (*Registry, error) {
	r := newRegistry(
		Entry{Type: TypeConnected, Decode: decodeJSON[ConnectedPayload](TypeConnected), Fold: foldConnected},
		Entry{Type: TypePing, Decode: decodeJSON[PingPayload](TypePing), Fold: foldPing},

		Entry{Type: TypeLLMGenerationStarted, Decode: decodeJSON[GenerationStartedPayload](TypeLLMGenerationStarted), Fold: foldLLMStarted},
		Entry{Type: TypeLLMGenerationUpdate, Decode: decodeJSON[LLMProgressPayload](TypeLLMGenerationUpdate), Fold: foldLLMUpdate},
		Entry{Type: TypeLLMGenerationCompleted, Decode: decodeJSON[LLMCompletedPayload](TypeLLMGenerationCompleted), Fold: foldLLMCompleted},
		Entry{Type: TypeLLMGenerationFailed, Decode: decodeJSON[GenerationFailedPayload](TypeLLMGenerationFailed), Fold: foldLLMFailed},

		Entry{Type: TypeImageGenerationStarted, Decode: decodeJSON[GenerationStartedPayload](TypeImageGenerationStarted), Fold: foldImageStarted},
		Entry{Type: TypeImageGenerationUpdate, Decode: decodeJSON[ImageProgressPayload](TypeImageGenerationUpdate), Fold: foldImageUpdate},
		Entry{Type: TypeImageGenerationCompleted, Decode: decodeJSON[ImageCompletedPayload](TypeImageGenerationCompleted), Fold: foldImageCompleted},
		Entry{Type: TypeImageGenerationFailed, Decode: decodeJSON[GenerationFailedPayload](TypeImageGenerationFailed), Fold: foldImageFailed},

		Entry{Type: TypeQueueUpdate, Decode: decodeJSON[QueueSnapshotPayload](TypeQueueUpdate), Fold: foldQueue},
	)
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func newRegistry(entries ...Entry) *Registry {
	m := make(map[Type]Entry, len(entries))
	for _, e := range entries {
		m[e.Type] = e
	}
	return &Registry{entries: m}
}

// Lookup resolves a wire event type. The second return is false for
// types outside the vocabulary.
func (r *Registry) Lookup(t Type) (Entry, bool) {
	e, ok := r.entries[t]
	return e, ok
}

// Types returns the registered event types in sorted order.
func (r *Registry) Types() []Type {
	types := make([]Type, 0, len(r.entries))
	for t := range r.entries {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Validate asserts every entry is complete.
func (r *Registry) Validate() error {
	for t, e := range r.entries {
		if t == "" {
			return errors.InvalidConfig("registry entry with empty event type")
		}
		if e.Decode == nil {
			return errors.InvalidConfig("registry entry " + string(t) + " has no decode function")
		}
		if e.Fold == nil {
			return errors.InvalidConfig("registry entry " + string(t) + " has no fold function")
		}
	}
	return nil
}
