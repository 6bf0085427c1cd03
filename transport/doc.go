// Package transport provides the capability-set abstraction a Device
// session uses to reach a physical device: setup, send, read,
// teardown, and the ErrorKind a failed read maps to. TCP and UDP are
// the two implementations; neither is retried or pooled, matching the
// single round-trip model of the session package.
package transport
