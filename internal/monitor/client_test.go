package monitor

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClientReporterFeedsHubRecord(t *testing.T) {
	hub := NewHub()
	srv := New(Config{}, hub)
	ts := httptest.NewServer(srv.http.Handler)
	defer ts.Close()

	addr := strings.TrimPrefix(ts.URL, "http://")
	client := NewClient(addr)
	report := client.Reporter("abcdef0123456789")

	events := hub.register(nil)
	defer hub.unregister(nil)

	report("outbound", []byte{0x00, 0x00, 0x55, 0xAA})

	select {
	case ev := <-events:
		if ev.Direction != Outbound {
			t.Errorf("Direction = %q, want %q", ev.Direction, Outbound)
		}
		if ev.Length != 4 {
			t.Errorf("Length = %d, want 4", ev.Length)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for /report to reach the hub")
	}
}
