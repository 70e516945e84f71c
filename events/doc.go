// Package events defines the wire event vocabulary, the typed payloads,
// the merged stream state, and the registry that pairs every event type
// with a decode and fold function.
//
// The vocabulary is closed: each wire type maps to exactly one registry
// entry, unknown types are dropped at the dispatch boundary. Decode
// never panics and fold is a pure function of (prior state, payload),
// so the whole pipeline can be exercised without a live connection.
package events
