package monitor

import (
	"encoding/hex"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tuyalink/tuyalink/display"
	"github.com/tuyalink/tuyalink/internal/logging"
)

// Direction labels which side of a round-trip a frame belongs to.
type Direction string

const (
	Outbound Direction = "outbound"
	Inbound  Direction = "inbound"
)

// Event is one observed frame, fanned out to every connected viewer.
type Event struct {
	Device    string    `json:"device"`
	Direction Direction `json:"direction"`
	Hex       string    `json:"hex"`
	Length    int       `json:"length"`
	Time      time.Time `json:"time"`
}

// Hub fans Events out to every connected WebSocket client. A Hub has
// no notion of sessions or devices beyond the string it is given;
// callers identify a device however their registry does.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan Event
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]chan Event)}
}

// Record builds an Event for a raw frame and fans it out to every
// connected client. Call it once per direction per round-trip.
func (h *Hub) Record(deviceID string, dir Direction, frame []byte) {
	h.Broadcast(Event{
		Device:    display.Format(deviceID),
		Direction: dir,
		Hex:       hex.EncodeToString(frame),
		Length:    len(frame),
		Time:      time.Now(),
	})
}

// Broadcast fans an already-built Event out to every connected client.
func (h *Hub) Broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, ch := range h.clients {
		select {
		case ch <- ev:
		default:
			logging.Warn("monitor client too slow, dropping event",
				zap.String("remote_addr", conn.RemoteAddr().String()))
		}
	}
}

// register adds conn to the fan-out set and returns its event channel.
func (h *Hub) register(conn *websocket.Conn) chan Event {
	ch := make(chan Event, 32)
	h.mu.Lock()
	h.clients[conn] = ch
	h.mu.Unlock()
	return ch
}

// unregister removes conn from the fan-out set.
func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	ch, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		close(ch)
	}
}

// ClientCount reports how many browser viewers are currently connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
