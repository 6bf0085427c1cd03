package protocol

// Message is the decoded (or about-to-be-encoded) unit the frame codec
// carries. Command is nil for an inbound frame whose code was not in
// the fixed table; RetCode is nil unless the envelope carried one.
type Message struct {
	Payload Payload
	Command *CommandType
	Seq     uint32
	RetCode *uint8
}

// NewMessage builds an outbound message. Command and Seq are always
// present for messages built this way; RetCode is populated only by
// the parser on inbound traffic.
func NewMessage(payload Payload, command CommandType, seq uint32) *Message {
	c := command
	return &Message{Payload: payload, Command: &c, Seq: seq}
}

// HasCommand reports whether m carries a recognized command code.
func (m *Message) HasCommand() bool {
	return m.Command != nil
}
