// Package sse provides a reusable Server-Sent Events reader.
//
// The reader parses the text/event-stream wire format frame by frame:
// event type, data lines, id, and retry hints. Frames that carry only
// an event type (server pings) are emitted too, so callers can track
// stream liveness without payloads.
package sse
