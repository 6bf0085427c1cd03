package protocol

import (
	"encoding/json"
	"unicode/utf8"
)

// PayloadStruct is the structured payload shape: devId is required,
// the rest are omitted on the wire when absent.
type PayloadStruct struct {
	DevID string                 `json:"devId"`
	GwID  string                 `json:"gwId,omitempty"`
	UID   string                 `json:"uid,omitempty"`
	T     *int64                 `json:"t,omitempty"`
	Dps   map[string]interface{} `json:"dps,omitempty"`
}

// Payload is the tagged union of a structured object or a free-form
// string, never both. Exactly one of Struct or Str is non-nil for a
// valid Payload.
type Payload struct {
	Struct *PayloadStruct
	Str    *string
}

// StructPayload wraps a PayloadStruct as the Structured variant.
func StructPayload(p PayloadStruct) Payload {
	return Payload{Struct: &p}
}

// StringPayload wraps s as the String variant.
func StringPayload(s string) Payload {
	return Payload{Str: &s}
}

// IsString reports whether p holds the String variant.
func (p Payload) IsString() bool {
	return p.Str != nil
}

// String returns the payload's string content, or "" for a Structured
// payload.
func (p Payload) String() string {
	if p.Str != nil {
		return *p.Str
	}
	return ""
}

func (p Payload) MarshalJSON() ([]byte, error) {
	if p.Str != nil {
		return json.Marshal(*p.Str)
	}
	if p.Struct != nil {
		return json.Marshal(p.Struct)
	}
	return []byte("null"), nil
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Str = &s
		p.Struct = nil
		return nil
	}
	var ps PayloadStruct
	if err := json.Unmarshal(data, &ps); err != nil {
		return NewError(ErrJSON, "", err)
	}
	p.Struct = &ps
	p.Str = nil
	return nil
}

// decodePayloadBytes implements the frame codec's payload fallback
// chain: a bare JSON string decodes to the String variant, a JSON
// object decodes to Structured, and anything else is kept as the raw
// text if it is valid UTF-8, or the literal "Payload invalid" if not.
func decodePayloadBytes(plain []byte) Payload {
	var s string
	if err := json.Unmarshal(plain, &s); err == nil {
		return StringPayload(s)
	}
	var ps PayloadStruct
	if err := json.Unmarshal(plain, &ps); err == nil {
		return StructPayload(ps)
	}
	if utf8.Valid(plain) {
		return StringPayload(string(plain))
	}
	return StringPayload("Payload invalid")
}
