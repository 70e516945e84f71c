// Package version exposes the SDK version for User-Agent reporting.
package version
