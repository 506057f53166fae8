// Package http provides the retry coordinator and request hooks used by the
// Gatewayz SDK.
//
// The retry loop is independent of network I/O: Retrier.Run drives any
// operation, and both the backoff schedule and the sleep function are
// injectable so tests can run on a fake clock.
package http
