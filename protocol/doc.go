// Package protocol implements the Tuya localtuya LAN wire protocol,
// versions 3.1 and 3.3: frame envelope framing, the AES-128-ECB
// payload cipher and its version-specific header framing, the
// Structured/String payload union, and the closed error taxonomy every
// fallible operation in this module surfaces.
//
// A MessageParser is created once per session from a Version and a
// 16-byte device key:
//
//	parser, err := protocol.NewMessageParser(protocol.Version33, key)
//	frame, err := parser.Encode(protocol.NewMessage(payload, protocol.CmdControl, seq), true)
//	messages, err := parser.Parse(received)
//
// Encode produces one complete wire frame; Parse accepts a buffer
// containing one or more concatenated frames and returns every
// Message it could decode, in wire order.
package protocol
