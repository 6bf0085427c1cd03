package protocol

import (
	"encoding/json"
	"testing"
)

func mustCipher(t *testing.T, key string, version Version) *Cipher {
	t.Helper()
	c, err := NewCipher([]byte(key), version)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	return c
}

func TestNewCipherRejectsWrongKeyLength(t *testing.T) {
	for _, key := range []string{"", "short", "waytoolongforanaeskeythisis"} {
		if _, err := NewCipher([]byte(key), Version33); err == nil {
			t.Errorf("NewCipher(%q): want error, got nil", key)
		} else if !Is(err, ErrKeyLength) {
			t.Errorf("NewCipher(%q): want ErrKeyLength, got %v", key, err)
		}
	}
}

func TestCipherRoundTrip(t *testing.T) {
	for _, version := range []Version{Version31, Version33} {
		c := mustCipher(t, "bbe88b3f4106d354", version)
		for _, plain := range [][]byte{
			[]byte(""),
			[]byte("a"),
			[]byte(`{"devId":"002004265ccf7fb1b659","dps":{"1":true,"2":0}}`),
			make([]byte, 200),
		} {
			ct, err := c.Encrypt(plain)
			if err != nil {
				t.Fatalf("Encrypt: %v", err)
			}
			got, err := c.Decrypt(ct)
			if err != nil {
				t.Fatalf("Decrypt: %v", err)
			}
			if string(got) != string(plain) {
				t.Errorf("round trip mismatch: got %q want %q", got, plain)
			}
		}
	}
}

// TestDecryptBase64_31 reproduces the 3.1 base64-wrapped ciphertext
// decrypt scenario: header-stripped, base64-decoded, AES-ECB decrypted
// payload carrying a structured dps reply.
func TestDecryptBase64_31(t *testing.T) {
	c := mustCipher(t, "bbe88b3f4106d354", Version31)
	input := []byte("3.133ed3d4a21effe90zrA8OK3r3JMiUXpXDWauNppY4Am2c8rZ6sb4Yf15MjM8n5ByDx+QWeCZtcrPqddxLrhm906bSKbQAFtT1uCp+zP5AxlqJf5d0Pp2OxyXyjg=")

	plain, err := c.Decrypt(input)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	var got struct {
		DevID string                 `json:"devId"`
		Dps   map[string]interface{} `json:"dps"`
		T     int64                  `json:"t"`
	}
	if err := json.Unmarshal(plain, &got); err != nil {
		t.Fatalf("decrypted payload is not the expected JSON: %v (plain=%q)", err, plain)
	}
	if got.DevID != "002004265ccf7fb1b659" {
		t.Errorf("devId = %q, want 002004265ccf7fb1b659", got.DevID)
	}
	if got.T != 1529442366 {
		t.Errorf("t = %d, want 1529442366", got.T)
	}
}

// TestDecryptErrorStringPassthrough_31 reproduces the device-side
// error-string decrypt scenario: the plaintext is a bare error message,
// not a JSON document, and must be preserved verbatim.
func TestDecryptErrorStringPassthrough_31(t *testing.T) {
	c := mustCipher(t, "bbe88b3f4106d354", Version31)
	input := []byte("3.133ed3d4a21effe90rt1hJFzMJPF3x9UhPTCiXw==")

	plain, err := c.Decrypt(input)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if string(plain) != "gw id invalid" {
		t.Errorf("plain = %q, want %q", plain, "gw id invalid")
	}
}

func TestMD5DigestLength(t *testing.T) {
	c := mustCipher(t, "bbe88b3f4106d354", Version33)
	digest := c.MD5Digest([]byte(`{"devId":"abc"}`))
	if len(digest) != 12 {
		t.Fatalf("MD5Digest length = %d, want 12", len(digest))
	}
}

func BenchmarkCipherEncrypt(b *testing.B) {
	c, _ := NewCipher([]byte("bbe88b3f4106d354"), Version33)
	plain := []byte(`{"devId":"002004265ccf7fb1b659","dps":{"1":true,"2":0}}`)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encrypt(plain); err != nil {
			b.Fatal(err)
		}
	}
}
