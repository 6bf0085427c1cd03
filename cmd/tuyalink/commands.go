package main

import (
	"fmt"
	"net"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tuyalink/tuyalink/display"
	"github.com/tuyalink/tuyalink/internal/config"
	"github.com/tuyalink/tuyalink/internal/monitor"
	"github.com/tuyalink/tuyalink/internal/tui"
	"github.com/tuyalink/tuyalink/internal/ui"
	"github.com/tuyalink/tuyalink/payload"
	"github.com/tuyalink/tuyalink/protocol"
	"github.com/tuyalink/tuyalink/session"
)

// Flags shared by the direct device commands (get/set/refresh/switch). A
// registry entry supplies whatever these don't override.
var (
	flagIP      string
	flagKey     string
	flagVersion string
	flagUDP     bool
	flagPort    int
	flagMonitor string
	flagVerbose bool
)

func init() {
	for _, c := range []*cobra.Command{getCmd, setCmd, refreshCmd, switchCmd} {
		c.Flags().StringVar(&flagIP, "ip", "", "device address, overriding the registry's last-known one")
		c.Flags().StringVar(&flagKey, "key", "", "local key, overriding the registry's saved one")
		c.Flags().StringVar(&flagVersion, "proto", "", `protocol version, "3.1" or "3.3" (default: registry's saved version)`)
		c.Flags().BoolVar(&flagUDP, "udp", false, "use UDP instead of TCP")
		c.Flags().IntVar(&flagPort, "port", session.DefaultPort, "device port")
		c.Flags().StringVar(&flagMonitor, "monitor", "", "address of a running 'tuyalink monitor' server to report wire frames to")
		c.Flags().BoolVar(&flagVerbose, "verbose", false, "show the round-trip legs and the raw wire trace")
	}
}

var getCmd = &cobra.Command{
	Use:   "get <device-id>",
	Short: "Query a device's current datapoints (DpQuery)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(args[0], protocol.CmdDpQuery)
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh <device-id>",
	Short: "Ask a device to refresh its datapoints (DpRefresh)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(args[0], protocol.CmdDpRefresh)
	},
}

var setCmd = &cobra.Command{
	Use:   "set <device-id> <dp-key> <dp-value>",
	Short: "Send a Control command setting one datapoint",
	Long: `Send a Control command setting one datapoint.

dp-value is parsed as a JSON scalar: "true"/"false" become booleans,
anything that parses as a number becomes a number, everything else is
sent as a string.`,
	Example: `  tuyalink set abc123...def 1 true
  tuyalink set abc123...def 2 "cool"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSet(args[0], args[1], args[2])
	},
}

var switchCmd = &cobra.Command{
	Use:   "switch <device-id> <on|off>",
	Short: "Toggle a single-switch socket or plug (dp 1)",
	Long: `Toggle a single-switch socket or plug.

This is a convenience over 'set' for the most common device shape: a
plug or socket exposing one boolean datapoint at key "1".`,
	Example: `  tuyalink switch abc123...def on
  tuyalink switch abc123...def off`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		on, err := parseSwitchState(args[1])
		if err != nil {
			return err
		}
		return runSwitch(args[0], on)
	},
}

func parseSwitchState(raw string) (bool, error) {
	switch raw {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf(`invalid switch state %q: want "on" or "off"`, raw)
}

// target is a device endpoint after merging the registry entry with
// any flag overrides: everything needed to dial it and to describe it
// in the command banner.
type target struct {
	ip    string
	key   string
	proto string
	udp   bool
}

func (t target) addr() string {
	return net.JoinHostPort(t.ip, strconv.Itoa(flagPort))
}

// resolveTarget merges devID's registry entry with the command-line
// overrides. Flags win; the registry fills in whatever they left
// unset.
func resolveTarget(devID string) (target, *config.Registry, error) {
	registry, err := config.LoadRegistry()
	if err != nil {
		return target{}, nil, fmt.Errorf("failed to load device registry: %w", err)
	}

	t := target{ip: flagIP, key: flagKey, proto: flagVersion, udp: flagUDP}
	if entry := registry.GetDevice(devID); entry != nil {
		if t.ip == "" {
			t.ip = entry.LastIP
		}
		if t.key == "" {
			t.key = entry.LocalKey
		}
		if t.proto == "" {
			t.proto = entry.Version
		}
		if !t.udp {
			t.udp = entry.UDP
		}
	}
	if t.proto == "" {
		t.proto = "3.3"
	}
	if t.ip == "" {
		return target{}, nil, fmt.Errorf("no known address for %s: pass --ip or register one first", display.Format(devID))
	}
	return t, registry, nil
}

// dialTarget builds the session for a resolved target. The runner's
// Reporter is composed with any --monitor reporter, so both observe
// the same round-trip.
func dialTarget(devID string, t target, runner *ui.CommandRunner) (*session.Device, error) {
	opts := []session.Option{session.WithPort(flagPort)}
	if t.udp {
		opts = append(opts, session.WithUDP())
	}
	if flagMonitor != "" {
		opts = append(opts, session.WithReporter(monitor.NewClient(flagMonitor).Reporter(devID)))
	}
	opts = append(opts, session.WithReporter(runner.Reporter))
	return session.New(t.proto, devID, []byte(t.key), t.ip, opts...)
}

// newRunner builds the ui.CommandRunner for one round-trip against a
// resolved target.
func newRunner(op, command, devID, detail string, t target) *ui.CommandRunner {
	return ui.NewCommandRunner(ui.RunnerConfig{
		Op:      op,
		Command: command,
		Device:  display.Format(devID),
		Addr:    t.addr(),
		Proto:   t.proto,
		Detail:  detail,
		Verbose: flagVerbose,
	})
}

func runQuery(devID string, cmd protocol.CommandType) error {
	t, registry, err := resolveTarget(devID)
	if err != nil {
		return err
	}
	runner := newRunner(cmd.String(), "tuyalink "+commandVerb(cmd), devID, "", t)
	d, err := dialTarget(devID, t, runner)
	if err != nil {
		return err
	}

	seq := uint32(time.Now().Unix())
	q := payload.Query(devID, "")

	err = runner.Run(func() error {
		var msgs []*protocol.Message
		var err error
		if cmd == protocol.CmdDpRefresh {
			msgs, err = d.Refresh(q, seq)
		} else {
			msgs, err = d.Get(q, seq)
		}
		if err != nil {
			return err
		}
		runner.RecordReplies(len(msgs))
		for i, m := range msgs {
			fmt.Printf("message %d: %s\n", i, formatPayload(m))
		}
		return nil
	})
	if err != nil {
		return err
	}

	registry.UpdateDeviceLastSeen(devID, t.ip)
	_ = registry.Save()
	return nil
}

func runSet(devID, dpKey, dpValue string) error {
	t, registry, err := resolveTarget(devID)
	if err != nil {
		return err
	}
	runner := newRunner("Control", "tuyalink set", devID, fmt.Sprintf("dp %s = %s", dpKey, dpValue), t)
	d, err := dialTarget(devID, t, runner)
	if err != nil {
		return err
	}

	dps := map[string]interface{}{dpKey: parseScalar(dpValue)}
	seq := uint32(time.Now().Unix())

	err = runner.Run(func() error {
		return d.Set(payload.Control(devID, dps, time.Now().Unix()), seq)
	})
	if err != nil {
		return err
	}

	registry.UpdateDeviceLastSeen(devID, t.ip)
	_ = registry.Save()
	return nil
}

func runSwitch(devID string, on bool) error {
	t, registry, err := resolveTarget(devID)
	if err != nil {
		return err
	}

	state := "off"
	if on {
		state = "on"
	}
	runner := newRunner("Control", "tuyalink switch", devID, "switch "+state, t)
	d, err := dialTarget(devID, t, runner)
	if err != nil {
		return err
	}

	seq := uint32(time.Now().Unix())

	err = runner.Run(func() error {
		return d.Set(payload.Control(devID, payload.Socket(on), time.Now().Unix()), seq)
	})
	if err != nil {
		return err
	}

	registry.UpdateDeviceLastSeen(devID, t.ip)
	_ = registry.Save()
	return nil
}

func commandVerb(cmd protocol.CommandType) string {
	if cmd == protocol.CmdDpRefresh {
		return "refresh"
	}
	return "get"
}

func formatPayload(m *protocol.Message) string {
	if m.Payload.IsString() {
		return m.Payload.String()
	}
	if m.Payload.Struct != nil {
		return fmt.Sprintf("%+v", m.Payload.Struct.Dps)
	}
	return "(empty)"
}

func parseScalar(raw string) interface{} {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive device console",
	RunE:  runTUI,
}

var flagTUIMonitor string

func init() {
	tuiCmd.Flags().StringVar(&flagTUIMonitor, "monitor", "", "address of a running 'tuyalink monitor' server to report wire frames to")
}

func runTUI(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load device registry: %w", err)
	}
	p := tea.NewProgram(tui.NewAppModel(registry, flagTUIMonitor), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Serve a live wire-trace dashboard over WebSocket",
	Long: `Serve a browser dashboard that displays wire traffic in real time.

Other processes report frames to this server's Hub as they perform
round-trips; every connected browser receives them as they happen.`,
	RunE: runMonitor,
}

var (
	monitorAddr     string
	monitorCertPath string
	monitorKeyPath  string
)

func init() {
	monitorCmd.Flags().StringVar(&monitorAddr, "addr", ":8787", "address to listen on")
	monitorCmd.Flags().StringVar(&monitorCertPath, "cert", "", "TLS certificate path (enables HTTPS/WSS)")
	monitorCmd.Flags().StringVar(&monitorKeyPath, "tls-key", "", "TLS private key path (enables HTTPS/WSS)")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	hub := monitor.NewHub()
	srv := monitor.New(monitor.Config{
		Addr:     monitorAddr,
		CertPath: monitorCertPath,
		KeyPath:  monitorKeyPath,
	}, hub)

	fmt.Printf("monitor listening on %s\n", monitorAddr)
	return srv.Start()
}
