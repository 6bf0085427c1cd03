package tui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuyalink/tuyalink/internal/config"
	"github.com/tuyalink/tuyalink/internal/monitor"
	"github.com/tuyalink/tuyalink/payload"
	"github.com/tuyalink/tuyalink/protocol"
	"github.com/tuyalink/tuyalink/session"
)

// roundTripResultMsg carries a completed command's outcome back into
// the bubbletea update loop.
type roundTripResultMsg struct {
	action   Action
	messages []*protocol.Message
	err      error
}

// runAction dials deviceID with the registry entry's saved key/version
// and performs the chosen Action, returning a tea.Cmd that resolves to
// roundTripResultMsg. The device connection happens off the UI
// goroutine, inside the tea.Cmd. monitorAddr, if non-empty, reports
// every frame to that running monitor server.
func runAction(devID string, dev *config.Device, action Action, dpKey, dpValue, monitorAddr string) tea.Cmd {
	return func() tea.Msg {
		key, err := decodeLocalKey(dev.LocalKey)
		if err != nil {
			return roundTripResultMsg{action: action, err: err}
		}

		opts := []session.Option{}
		if dev.UDP {
			opts = append(opts, session.WithUDP())
		}
		if monitorAddr != "" {
			opts = append(opts, session.WithReporter(monitor.NewClient(monitorAddr).Reporter(devID)))
		}

		d, err := session.New(dev.Version, devID, key, dev.LastIP, opts...)
		if err != nil {
			return roundTripResultMsg{action: action, err: err}
		}

		seq := uint32(time.Now().Unix())

		switch action {
		case ActionGet:
			msgs, err := d.Get(payload.Query(devID, ""), seq)
			return roundTripResultMsg{action: action, messages: msgs, err: err}
		case ActionRefresh:
			msgs, err := d.Refresh(payload.Query(devID, ""), seq)
			return roundTripResultMsg{action: action, messages: msgs, err: err}
		case ActionSet:
			dps := map[string]interface{}{dpKey: parseDPValue(dpValue)}
			err := d.Set(payload.Control(devID, dps, time.Now().Unix()), seq)
			return roundTripResultMsg{action: action, err: err}
		default:
			return roundTripResultMsg{action: action, err: protocol.NewError(protocol.ErrMissingAddress, "", nil)}
		}
	}
}

// decodeLocalKey accepts either a raw 16-byte key or a hex-encoded one,
// matching how the registry stores whatever the operator pasted in.
func decodeLocalKey(raw string) ([]byte, error) {
	if raw == "" {
		return nil, nil
	}
	if len(raw) == 32 {
		if b, err := hexDecode(raw); err == nil {
			return b, nil
		}
	}
	return []byte(raw), nil
}

func hexDecode(s string) ([]byte, error) {
	b := make([]byte, len(s)/2)
	for i := 0; i < len(b); i++ {
		v, err := strconv.ParseInt(s[i*2:i*2+2], 16, 16)
		if err != nil {
			return nil, err
		}
		b[i] = byte(v)
	}
	return b, nil
}

// parseDPValue converts a textinput's raw value into the closest JSON
// scalar: bool, number, or string, mirroring how a user would type a
// datapoint value on the command line.
func parseDPValue(raw string) interface{} {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	return raw
}
