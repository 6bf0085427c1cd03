package transport

import (
	"time"

	"github.com/tuyalink/tuyalink/protocol"
)

// ioTimeout bounds every setup/send/read call. The core is
// synchronous: this is the only way a stuck round-trip unblocks.
const ioTimeout = 2 * time.Second

// Transport is the capability set a device session needs from a
// network connection. There is no inheritance hierarchy: TCP and UDP
// each implement this interface independently.
type Transport interface {
	Setup(addr string) error
	Send(data []byte) (int, error)
	Read(buf []byte) (int, error)
	Teardown() error
	ErrorKind() protocol.ErrorKind
}
