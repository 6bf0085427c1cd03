package transport

import (
	"io"
	"net"
	"time"

	"github.com/tuyalink/tuyalink/protocol"
)

// UDP is the datagram transport: connect-then-send/recv, the same
// 2-second timeouts as TCP, and no directional teardown — Teardown
// only releases the socket handle.
type UDP struct {
	conn net.Conn
}

func (u *UDP) Setup(addr string) error {
	conn, err := net.DialTimeout("udp", addr, ioTimeout)
	if err != nil {
		return protocol.NewError(protocol.ErrUDP, "dial", err)
	}
	deadline := time.Now().Add(ioTimeout)
	if err := conn.SetReadDeadline(deadline); err != nil {
		_ = conn.Close()
		return protocol.NewError(protocol.ErrUDP, "set read deadline", err)
	}
	if err := conn.SetWriteDeadline(deadline); err != nil {
		_ = conn.Close()
		return protocol.NewError(protocol.ErrUDP, "set write deadline", err)
	}
	u.conn = conn
	return nil
}

func (u *UDP) Send(data []byte) (int, error) {
	n, err := u.conn.Write(data)
	if err != nil {
		return n, protocol.NewError(protocol.ErrUDP, "write", err)
	}
	return n, nil
}

func (u *UDP) Read(buf []byte) (int, error) {
	n, err := u.conn.Read(buf)
	if err == io.EOF || (err == nil && n == 0) {
		return 0, protocol.NewError(protocol.ErrBadUDPRead, "zero-byte read", err)
	}
	if err != nil {
		return n, protocol.NewError(protocol.ErrUDP, "read", err)
	}
	return n, nil
}

// Teardown releases the socket handle. There is no directional
// shutdown for a datagram socket.
func (u *UDP) Teardown() error {
	if u.conn == nil {
		return nil
	}
	return u.conn.Close()
}

func (u *UDP) ErrorKind() protocol.ErrorKind { return protocol.ErrBadUDPRead }
