package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tuyalink/tuyalink/internal/logging"
)

// Config holds the monitor server's listen and TLS configuration.
type Config struct {
	Addr     string // host:port to listen on, e.g. ":8787"
	CertPath string // optional: serve HTTPS/WSS if both Cert/Key are set
	KeyPath  string
}

// Server serves the viewer page and the /ws upgrade endpoint.
type Server struct {
	config Config
	hub    *Hub
	http   *http.Server
	wg     sync.WaitGroup
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// New builds a Server that fans out hub's Events to browser clients.
func New(config Config, hub *Hub) *Server {
	s := &Server{config: config, hub: hub}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveViewer)
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/report", s.serveReport)

	s.http = &http.Server{
		Addr:              config.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if config.CertPath != "" && config.KeyPath != "" {
		if tlsConfig, err := NewTLSConfig(config.CertPath, config.KeyPath); err == nil {
			s.http.TLSConfig = tlsConfig
		} else {
			logging.Error("monitor TLS config failed, falling back to plain HTTP", zap.Error(err))
			s.config.CertPath, s.config.KeyPath = "", ""
		}
	}
	return s
}

// Start serves until a shutdown signal arrives or ListenAndServe fails.
// It blocks for the server's whole lifetime.
func (s *Server) Start() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		var err error
		if s.config.CertPath != "" && s.config.KeyPath != "" {
			logging.Info("monitor listening (https)", zap.String("addr", s.config.Addr))
			err = s.http.ListenAndServeTLS(s.config.CertPath, s.config.KeyPath)
		} else {
			logging.Info("monitor listening (http)", zap.String("addr", s.config.Addr))
			err = s.http.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		logging.Info("monitor shutdown signal received")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully stops the HTTP server, waiting up to 10 seconds
// for in-flight WebSocket handlers to return.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		logging.Error("monitor shutdown error", zap.Error(err))
		return err
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		logging.Warn("monitor shutdown timed out waiting for clients")
	}
	return nil
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("monitor websocket upgrade failed", zap.Error(err))
		return
	}

	s.wg.Add(1)
	go s.pump(conn)
}

func (s *Server) pump(conn *websocket.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	remoteAddr := conn.RemoteAddr().String()
	logging.Info("monitor client connected", zap.String("remote_addr", remoteAddr))
	defer logging.Info("monitor client disconnected", zap.String("remote_addr", remoteAddr))

	events := s.hub.register(conn)
	defer s.hub.unregister(conn)

	// Drain client reads so a closed browser tab is noticed promptly;
	// the viewer never sends application data over this connection.
	// Unregistering closes events, which ends the write loop below.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				_ = conn.Close()
				s.hub.unregister(conn)
				return
			}
		}
	}()

	for ev := range events {
		data, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// ingestRequest is the wire shape a Client POSTs to /report: a raw
// frame plus enough context for the Hub to build a display Event.
type ingestRequest struct {
	DeviceID  string    `json:"device_id"`
	Direction Direction `json:"direction"`
	Frame     []byte    `json:"frame"`
}

// serveReport lets another process (a `get`/`set`/`refresh` CLI
// invocation, typically) feed frames it observed into this server's
// Hub, so a browser watching / sees traffic from commands that never
// shared this process.
func (s *Server) serveReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	s.hub.Record(req.DeviceID, req.Direction, req.Frame)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) serveViewer(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, viewerHTML)
}

const viewerHTML = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>tuyalink monitor</title></head>
<body style="font-family: monospace; background: #111; color: #ddd;">
<h3>tuyalink wire monitor</h3>
<div id="log"></div>
<script>
  const log = document.getElementById("log");
  const proto = location.protocol === "https:" ? "wss:" : "ws:";
  const ws = new WebSocket(proto + "//" + location.host + "/ws");
  ws.onmessage = (msg) => {
    const ev = JSON.parse(msg.data);
    const line = document.createElement("div");
    line.textContent = ev.time + " [" + ev.device + "] " + ev.direction + " (" + ev.length + "B) " + ev.hex;
    log.prepend(line);
  };
</script>
</body>
</html>`
