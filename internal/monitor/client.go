package monitor

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"
)

// Client posts observed frames to a running Server's /report endpoint,
// the mechanism a short-lived `get`/`set`/`refresh` invocation uses to
// feed a long-running `tuyalink monitor` dashboard it doesn't share a
// process with.
type Client struct {
	addr string
	http *http.Client
}

// NewClient builds a Client that reports to the monitor server
// listening on addr (host:port, no scheme).
func NewClient(addr string) *Client {
	return &Client{addr: addr, http: &http.Client{Timeout: 2 * time.Second}}
}

// Reporter returns a function suitable for session.WithReporter that
// reports every frame it's given as belonging to deviceID. Failures
// (monitor not running, network error) are swallowed: a missing
// dashboard must never fail a device round-trip.
func (c *Client) Reporter(deviceID string) func(dir string, frame []byte) {
	return func(dir string, frame []byte) {
		body, err := json.Marshal(ingestRequest{
			DeviceID:  deviceID,
			Direction: Direction(dir),
			Frame:     frame,
		})
		if err != nil {
			return
		}
		resp, err := c.http.Post("http://"+c.addr+"/report", "application/json", bytes.NewReader(body))
		if err != nil {
			return
		}
		_ = resp.Body.Close()
	}
}
