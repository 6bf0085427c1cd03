package protocol

import (
	"encoding/hex"
	"testing"
)

func mustParser(t *testing.T, version Version, key string) *MessageParser {
	t.Helper()
	mp, err := NewMessageParser(version, []byte(key))
	if err != nil {
		t.Fatalf("NewMessageParser: %v", err)
	}
	return mp
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

// TestParseHeartbeat reproduces the heartbeat parse scenario: a single
// frame with an empty payload region and a zero return code decodes to
// a String("") payload.
func TestParseHeartbeat(t *testing.T) {
	mp := mustParser(t, Version33, "bbe88b3f4106d354")
	data := mustHex(t, "000055aa00000000000000090000000c00000000b051ab030000aa55")

	msgs, err := mp.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	m := msgs[0]
	if !m.HasCommand() || *m.Command != CmdHeartBeat {
		t.Errorf("command = %v, want HeartBeat", m.Command)
	}
	if m.Seq != 0 {
		t.Errorf("seq = %d, want 0", m.Seq)
	}
	if m.RetCode == nil || *m.RetCode != 0 {
		t.Errorf("retCode = %v, want 0", m.RetCode)
	}
	if !m.Payload.IsString() || m.Payload.String() != "" {
		t.Errorf("payload = %+v, want empty string payload", m.Payload)
	}
}

// TestParseDoubleFrame reproduces the double-frame parse scenario: two
// concatenated frames decode to two messages in wire order.
func TestParseDoubleFrame(t *testing.T) {
	mp := mustParser(t, Version33, "bbe88b3f4106d354")
	data := mustHex(t, "000055aa00000000000000090000000c00000000b051ab030000aa55"+
		"000055aa0000000a0000000a0000000c00000000b383f1e00000aa55")

	msgs, err := mp.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if *msgs[0].Command != CmdHeartBeat || msgs[0].Seq != 0 {
		t.Errorf("first message = %+v", msgs[0])
	}
	if *msgs[1].Command != CmdDpQuery || msgs[1].Seq != 10 {
		t.Errorf("second message = %+v", msgs[1])
	}
}

// TestRoundTrip31Plaintext reproduces the 3.1 plaintext round-trip
// scenario: encrypt=false skips the cipher entirely at the 3.1 layer.
func TestRoundTrip31Plaintext(t *testing.T) {
	mp := mustParser(t, Version31, "bbe88b3f4106d354")
	payload := StructPayload(PayloadStruct{
		DevID: "002004265ccf7fb1b659",
		Dps:   map[string]interface{}{"1": true, "2": float64(0)},
	})
	msg := NewMessage(payload, CmdDpQuery, 2)

	encoded, err := mp.Encode(msg, false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	msgs, err := mp.Parse(encoded)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	got := msgs[0]
	if got.Payload.Struct == nil || got.Payload.Struct.DevID != "002004265ccf7fb1b659" {
		t.Errorf("payload = %+v", got.Payload)
	}
	if *got.Command != CmdDpQuery || got.Seq != 2 {
		t.Errorf("command/seq = %v/%d", got.Command, got.Seq)
	}
}

// TestRoundTrip33Encrypted reproduces the 3.3 encrypted set round-trip
// scenario: the payload region must start with the "3.3" header tag.
func TestRoundTrip33Encrypted(t *testing.T) {
	mp := mustParser(t, Version33, "bbe88b3f4106d354")
	payload := StructPayload(PayloadStruct{
		DevID: "002004265ccf7fb1b659",
		Dps:   map[string]interface{}{"1": true, "2": float64(0)},
	})
	msg := NewMessage(payload, CmdControl, 0)

	encoded, err := mp.Encode(msg, true)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	payloadRegionStart := encoded[headerLen:]
	if string(payloadRegionStart[:3]) != "3.3" {
		t.Errorf("payload region does not start with 3.3 tag: %x", payloadRegionStart[:8])
	}

	msgs, err := mp.Parse(encoded)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Payload.Struct == nil || msgs[0].Payload.Struct.DevID != "002004265ccf7fb1b659" {
		t.Errorf("round trip mismatch: %+v", msgs)
	}
}

// TestDpQueryUnder33HasNoHeader reproduces the 3.3 command
// discrimination invariant: DpQuery/DpRefresh never get the "3.3"
// header even though every other command does.
func TestDpQueryUnder33HasNoHeader(t *testing.T) {
	mp := mustParser(t, Version33, "bbe88b3f4106d354")
	payload := StructPayload(PayloadStruct{DevID: "abc"})

	for _, tc := range []struct {
		cmd        CommandType
		wantHeader bool
	}{
		{CmdDpQuery, false},
		{CmdDpRefresh, false},
		{CmdControl, true},
		{CmdStatus, true},
	} {
		msg := NewMessage(payload, tc.cmd, 1)
		encoded, err := mp.Encode(msg, true)
		if err != nil {
			t.Fatalf("Encode(%v): %v", tc.cmd, err)
		}
		region := encoded[headerLen:]
		hasHeader := len(region) >= 3 && string(region[:3]) == "3.3"
		if hasHeader != tc.wantHeader {
			t.Errorf("command %v: header present = %v, want %v", tc.cmd, hasHeader, tc.wantHeader)
		}
	}
}

// TestEncryptFlag31Toggle and TestEncryptFlag33Irrelevant cover the two
// encrypt-flag invariants from the core spec.
func TestEncryptFlag31Toggle(t *testing.T) {
	mp := mustParser(t, Version31, "bbe88b3f4106d354")
	payload := StructPayload(PayloadStruct{DevID: "abc"})
	msg := NewMessage(payload, CmdControl, 1)

	withEncrypt, err := mp.Encode(msg, true)
	if err != nil {
		t.Fatalf("Encode(true): %v", err)
	}
	withoutEncrypt, err := mp.Encode(msg, false)
	if err != nil {
		t.Fatalf("Encode(false): %v", err)
	}
	if string(withEncrypt) == string(withoutEncrypt) {
		t.Error("3.1 encrypt flag had no effect on the encoded frame")
	}
}

func TestEncryptFlag33Irrelevant(t *testing.T) {
	mp := mustParser(t, Version33, "bbe88b3f4106d354")
	payload := StructPayload(PayloadStruct{DevID: "abc"})
	msg := NewMessage(payload, CmdControl, 1)

	withEncrypt, err := mp.Encode(msg, true)
	if err != nil {
		t.Fatalf("Encode(true): %v", err)
	}
	withoutEncrypt, err := mp.Encode(msg, false)
	if err != nil {
		t.Fatalf("Encode(false): %v", err)
	}
	if string(withEncrypt) != string(withoutEncrypt) {
		t.Error("3.3 must always encrypt regardless of the encrypt flag")
	}
}

// TestCRCCorruption reproduces the CRC corruption scenario: mutating
// the CRC trailer of an otherwise valid frame yields CRCError.
func TestCRCCorruption(t *testing.T) {
	mp := mustParser(t, Version33, "bbe88b3f4106d354")
	payload := StructPayload(PayloadStruct{DevID: "abc"})
	msg := NewMessage(payload, CmdControl, 1)

	encoded, err := mp.Encode(msg, true)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	crcOffset := len(encoded) - 8 // 4-byte CRC precedes the 4-byte suffix
	copy(encoded[crcOffset:crcOffset+4], mustHex(t, "DEADBEEF"))

	_, err = mp.Parse(encoded)
	if err == nil {
		t.Fatal("Parse: want CRCError, got nil")
	}
	if !Is(err, ErrCRC) {
		t.Errorf("Parse: want CRCError, got %v", err)
	}
}

func TestParseTruncatedBufferIsIncomplete(t *testing.T) {
	mp := mustParser(t, Version33, "bbe88b3f4106d354")
	full := mustHex(t, "000055aa00000000000000090000000c00000000b051ab030000aa55")

	_, err := mp.Parse(full[:len(full)-2])
	if err == nil {
		t.Fatal("Parse: want an error for a truncated frame, got nil")
	}
	if !Is(err, ErrParsingIncomplete) && !Is(err, ErrParse) {
		t.Errorf("Parse: want ParsingIncomplete or ParseError, got %v", err)
	}
}

func TestParseTrailingBytesAfterCompleteFrame(t *testing.T) {
	mp := mustParser(t, Version33, "bbe88b3f4106d354")
	full := mustHex(t, "000055aa00000000000000090000000c00000000b051ab030000aa55")
	withGarbage := append(append([]byte{}, full...), 0x01, 0x02, 0x03)

	_, err := mp.Parse(withGarbage)
	if err == nil {
		t.Fatal("Parse: want BufferNotCompletelyParsedError, got nil")
	}
	if !Is(err, ErrBufferNotCompletelyParsed) {
		t.Errorf("Parse: want BufferNotCompletelyParsedError, got %v", err)
	}
}

func TestEncodeWithoutCommandFails(t *testing.T) {
	mp := mustParser(t, Version33, "bbe88b3f4106d354")
	msg := &Message{Payload: StructPayload(PayloadStruct{DevID: "abc"}), Seq: 1}

	_, err := mp.Encode(msg, true)
	if err == nil || !Is(err, ErrCommandTypeMissing) {
		t.Errorf("Encode: want ErrCommandTypeMissing, got %v", err)
	}
}

func BenchmarkEncode33(b *testing.B) {
	mp, _ := NewMessageParser(Version33, []byte("bbe88b3f4106d354"))
	payload := StructPayload(PayloadStruct{
		DevID: "002004265ccf7fb1b659",
		Dps:   map[string]interface{}{"1": true, "2": float64(0)},
	})
	msg := NewMessage(payload, CmdControl, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mp.Encode(msg, true); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse33(b *testing.B) {
	mp, _ := NewMessageParser(Version33, []byte("bbe88b3f4106d354"))
	payload := StructPayload(PayloadStruct{
		DevID: "002004265ccf7fb1b659",
		Dps:   map[string]interface{}{"1": true, "2": float64(0)},
	})
	encoded, err := mp.Encode(NewMessage(payload, CmdControl, 0), true)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mp.Parse(encoded); err != nil {
			b.Fatal(err)
		}
	}
}
