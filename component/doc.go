// Package component defines the lifecycle contract shared by the SDK's
// long-lived pieces.
//
// The stream manager implements Component so applications can start,
// stop, and health-check it alongside their own infrastructure.
package component
