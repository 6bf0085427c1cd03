package monitor

import (
	"crypto/tls"
	"fmt"

	"go.uber.org/zap"

	"github.com/tuyalink/tuyalink/internal/logging"
)

// NewTLSConfig builds a browser-facing TLS configuration from a
// certificate/key pair on disk. TLS 1.2 is the floor, and the cipher
// suite list is left to Go's default selection since the peers here
// are ordinary browsers.
func NewTLSConfig(certPath, keyPath string) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	logging.Info("monitor TLS configuration loaded",
		zap.String("cert", certPath),
		zap.String("key", keyPath),
		zap.String("min_version", "1.2"),
	)

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
