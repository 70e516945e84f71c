// Package streamtest provides an in-process SSE server for exercising
// the stream manager against a real HTTP transport in tests.
package streamtest
