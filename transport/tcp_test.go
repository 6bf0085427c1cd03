//go:build integration

package transport

import (
	"net"
	"testing"

	"github.com/tuyalink/tuyalink/protocol"
)

// TestTCPRoundTrip exercises Setup/Send/Read/Teardown against an
// in-process fake device listener. Gated behind the integration tag
// so the default test run never touches the network.
func TestTCPRoundTrip(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 16)
		n, err := conn.Read(buf)
		if err != nil {
			return
		}
		_, _ = conn.Write(buf[:n])
	}()

	tr := &TCP{}
	if err := tr.Setup(ln.Addr().String()); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer tr.Teardown()

	sent := []byte("hello-device")
	if _, err := tr.Send(sent); err != nil {
		t.Fatalf("Send: %v", err)
	}

	buf := make([]byte, 256)
	n, err := tr.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf[:n]) != string(sent) {
		t.Errorf("Read: got %q, want %q", buf[:n], sent)
	}
}

func TestTCPZeroByteReadIsBadRead(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		conn.Close()
	}()

	tr := &TCP{}
	if err := tr.Setup(ln.Addr().String()); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer tr.Teardown()

	buf := make([]byte, 256)
	_, err = tr.Read(buf)
	if err == nil {
		t.Fatal("Read: want an error after peer close, got nil")
	}
	if !protocol.Is(err, protocol.ErrBadTCPRead) {
		t.Errorf("Read: want BadTcpRead after peer close, got %v", err)
	}
}
