// Package api is the request/response client for the backend's REST
// endpoints: card collection, generation requests, and queue reads.
//
// Real-time updates do not come from here; they arrive over the stream
// package. Retryable failures are retried with backoff, every request
// carries a request ID, and calls are traced when a tracer provider is
// installed.
package api
