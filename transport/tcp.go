package transport

import (
	"io"
	"net"
	"time"

	"github.com/tuyalink/tuyalink/protocol"
)

// TCP is the stream transport: Nagle disabled, 2-second read/write
// timeouts, both directions shut down on teardown.
type TCP struct {
	conn net.Conn
}

func (t *TCP) Setup(addr string) error {
	conn, err := net.DialTimeout("tcp", addr, ioTimeout)
	if err != nil {
		return protocol.NewError(protocol.ErrTCP, "dial", err)
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}
	deadline := time.Now().Add(ioTimeout)
	if err := conn.SetReadDeadline(deadline); err != nil {
		_ = conn.Close()
		return protocol.NewError(protocol.ErrTCP, "set read deadline", err)
	}
	if err := conn.SetWriteDeadline(deadline); err != nil {
		_ = conn.Close()
		return protocol.NewError(protocol.ErrTCP, "set write deadline", err)
	}
	t.conn = conn
	return nil
}

func (t *TCP) Send(data []byte) (int, error) {
	n, err := t.conn.Write(data)
	if err != nil {
		return n, protocol.NewError(protocol.ErrTCP, "write", err)
	}
	return n, nil
}

func (t *TCP) Read(buf []byte) (int, error) {
	n, err := t.conn.Read(buf)
	if err == io.EOF || (err == nil && n == 0) {
		return 0, protocol.NewError(protocol.ErrBadTCPRead, "zero-byte read", err)
	}
	if err != nil {
		return n, protocol.NewError(protocol.ErrTCP, "read", err)
	}
	return n, nil
}

// Teardown shuts down both directions and releases the socket.
func (t *TCP) Teardown() error {
	if t.conn == nil {
		return nil
	}
	if tc, ok := t.conn.(*net.TCPConn); ok {
		_ = tc.CloseRead()
		_ = tc.CloseWrite()
	}
	return t.conn.Close()
}

func (t *TCP) ErrorKind() protocol.ErrorKind { return protocol.ErrBadTCPRead }
