// Package resilience provides retry with exponential backoff and
// jitter for request/response calls.
//
// The stream manager does not use it: stream reconnection is a single
// owned fixed-delay timer, not a retry loop.
package resilience
