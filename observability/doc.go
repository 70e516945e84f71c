// Package observability initializes the OpenTelemetry meter and tracer
// providers so embedding applications can export the SDK's stream
// metrics and request spans. Without these initializers every
// instrument in the SDK stays a no-op.
package observability
