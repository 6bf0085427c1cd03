package session

import (
	"net"
	"strconv"

	"go.uber.org/zap"

	"github.com/tuyalink/tuyalink/display"
	"github.com/tuyalink/tuyalink/internal/logging"
	"github.com/tuyalink/tuyalink/protocol"
	"github.com/tuyalink/tuyalink/transport"
)

// DefaultPort is the standard Tuya LAN port.
const DefaultPort = 6668

// recvBufSize is the fixed receive buffer size for the single read a
// round-trip performs before tearing the transport down. Device
// replies to a single request fit well inside it.
const recvBufSize = 256

// Reporter observes the raw encoded/received bytes of a round-trip.
// dir is "outbound" for the frame as sent or "inbound" for the frame
// as received, before parsing. Implementations must not block; a slow
// Reporter stalls the round-trip it's attached to.
type Reporter func(dir string, frame []byte)

// Device is a single LAN endpoint speaking the Tuya wire protocol. It
// holds an immutable parser and dials a fresh transport per round-trip;
// nothing about a Device is shared across concurrent calls, and
// callers are expected to serialize their own use of one.
type Device struct {
	parser  *protocol.MessageParser
	addr    string
	devID   string
	newConn func() transport.Transport
	report  Reporter
}

// Option configures New.
type Option func(*config)

type config struct {
	port     int
	udp      bool
	reporter Reporter
}

// WithPort overrides DefaultPort.
func WithPort(port int) Option {
	return func(c *config) { c.port = port }
}

// WithUDP selects the datagram transport instead of the default
// stream transport.
func WithUDP() Option {
	return func(c *config) { c.udp = true }
}

// WithReporter attaches r, which is called once per direction for
// every round-trip this Device performs. It's the hook a live wire
// monitor (internal/monitor) attaches to, without this package
// depending on that one. Calling WithReporter more than once composes
// reporters rather than replacing the previous one, so a verbose wire
// trace and a monitor feed can both observe the same round-trip.
func WithReporter(r Reporter) Option {
	return func(c *config) {
		if c.reporter == nil {
			c.reporter = r
			return
		}
		prev := c.reporter
		c.reporter = func(dir string, frame []byte) {
			prev(dir, frame)
			r(dir, frame)
		}
	}
}

// New builds a Device for devID at ip, authenticated with key under
// versionStr ("3.1" or "3.3"). An empty key falls back to the default
// UDP key derivation, matching devices that accept the
// DefaultUDPKey() digest for unauthenticated discovery-style queries.
func New(versionStr, devID string, key []byte, ip string, opts ...Option) (*Device, error) {
	version, err := protocol.ParseVersion(versionStr)
	if err != nil {
		return nil, err
	}
	if ip == "" {
		return nil, protocol.NewError(protocol.ErrMissingAddress, "", nil)
	}
	if len(key) == 0 {
		key = protocol.DefaultUDPKey()
	}
	parser, err := protocol.NewMessageParser(version, key)
	if err != nil {
		return nil, err
	}

	cfg := config{port: DefaultPort}
	for _, opt := range opts {
		opt(&cfg)
	}

	addr := net.JoinHostPort(ip, strconv.Itoa(cfg.port))
	newConn := func() transport.Transport { return &transport.TCP{} }
	if cfg.udp {
		newConn = func() transport.Transport { return &transport.UDP{} }
	}

	return &Device{parser: parser, addr: addr, devID: devID, newConn: newConn, report: cfg.reporter}, nil
}

// Set issues a Control command and discards the parsed replies beyond
// logging them.
func (d *Device) Set(payload protocol.Payload, seq uint32) error {
	msgs, err := d.roundTrip(protocol.CmdControl, payload, seq)
	if err != nil {
		return err
	}
	logging.Debug("set acknowledged",
		zap.String("device", display.Format(d.devID)),
		zap.Int("replies", len(msgs)),
	)
	return nil
}

// Get issues a DpQuery command and returns the parsed replies.
func (d *Device) Get(payload protocol.Payload, seq uint32) ([]*protocol.Message, error) {
	return d.roundTrip(protocol.CmdDpQuery, payload, seq)
}

// Refresh issues a DpRefresh command and returns the parsed replies.
func (d *Device) Refresh(payload protocol.Payload, seq uint32) ([]*protocol.Message, error) {
	return d.roundTrip(protocol.CmdDpRefresh, payload, seq)
}

// roundTrip performs the single, non-retried sequence: open transport,
// setup, send(encode(mes, encrypt=true)), read into a 256-byte buffer,
// teardown, then parse.
func (d *Device) roundTrip(cmd protocol.CommandType, payload protocol.Payload, seq uint32) ([]*protocol.Message, error) {
	msg := protocol.NewMessage(payload, cmd, seq)
	encoded, err := d.parser.Encode(msg, true)
	if err != nil {
		return nil, err
	}

	conn := d.newConn()
	if err := conn.Setup(d.addr); err != nil {
		return nil, err
	}
	logging.LogConnection(d.addr, "setup")

	logging.Info("sending frame",
		zap.String("device", display.Format(d.devID)),
		zap.String("addr", d.addr),
		zap.Stringer("command", cmd),
		zap.Uint32("seq", seq),
	)

	if _, err := conn.Send(encoded); err != nil {
		_ = conn.Teardown()
		return nil, err
	}
	logging.LogFrame("outbound frame", encoded)
	if d.report != nil {
		d.report("outbound", encoded)
	}

	buf := make([]byte, recvBufSize)
	n, err := conn.Read(buf)
	if err != nil {
		_ = conn.Teardown()
		return nil, err
	}
	if n == 0 {
		_ = conn.Teardown()
		return nil, protocol.NewError(conn.ErrorKind(), "device closed the session without replying", nil)
	}
	if err := conn.Teardown(); err != nil {
		return nil, err
	}
	logging.LogFrame("inbound frame", buf[:n])
	if d.report != nil {
		d.report("inbound", buf[:n])
	}

	messages, err := d.parser.Parse(buf[:n])
	if err != nil {
		return messages, err
	}
	logging.Debug("received frame",
		zap.String("device", display.Format(d.devID)),
		zap.Int("messages", len(messages)),
	)
	return messages, nil
}
