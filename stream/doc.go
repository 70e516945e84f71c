// Package stream owns the live Server-Sent-Events connection to the
// backend and publishes the merged event state.
//
// A Manager drives the connection lifecycle state machine
// (disconnected, connecting, connected, error) with a single owned
// reconnect timer, dispatches incoming events through the registry, and
// replaces the state atomically so subscribers never observe a torn
// update. Managers are explicitly constructed and explicitly owned;
// independent instances do not share anything.
package stream
