// Package payload provides convenience constructors for the
// structured dps payload shape, so callers don't hand-build
// protocol.PayloadStruct values for the common cases: a Control
// command's data-point map, a bare DpQuery addressed by device and
// gateway ID, and the single-switch socket on/off convenience.
package payload
