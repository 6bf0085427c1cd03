// Package session ties a protocol.MessageParser and a transport.Transport
// to a single device endpoint and exposes the three operations a caller
// needs: Set, Get, and Refresh. Each call is a single, non-retried
// round-trip: a fresh transport is opened, the request is sent, one
// read is attempted into a 256-byte buffer, the transport is torn
// down, and the result is parsed.
package session
