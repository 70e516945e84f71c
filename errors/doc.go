// Package errors provides the unified error type used across the SDK.
//
// Every failure surfaced by the client (transport drops, malformed
// stream payloads, rejected API calls, bad configuration) is an
// *AppError carrying a machine-readable code, a human-readable message,
// and a retryable flag that drives the REST client's retry policy.
// Nothing in the SDK panics across a package boundary; errors degrade
// to values.
package errors
