package ui

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// RunnerConfig identifies the round-trip a CommandRunner is about to
// render: the wire operation, the CLI command driving it, and the
// endpoint facts (device, address, protocol version) that determine
// whether it can succeed.
type RunnerConfig struct {
	Op      string // wire operation, e.g. "DpQuery", "Control"
	Command string // e.g. "tuyalink get"
	Device  string // device ID, already scrambled for display
	Addr    string // host:port being dialed
	Proto   string // "3.1" or "3.3"
	Detail  string // optional request summary, e.g. `dp 1 = true`
	Verbose bool   // render the raw wire trace after the outcome
	Output  io.Writer
}

// CommandRunner renders one device round-trip: a Banner before it, an
// Exchange leg line as each frame direction completes, and an Outcome
// box after. Its Reporter method plugs straight into the session
// layer's round-trip observer, so the display and the verbose hex
// trace are driven by the actual wire frames rather than by callers
// narrating their own progress.
type CommandRunner struct {
	config   RunnerConfig
	exchange *Exchange
	trace    strings.Builder
	replies  int
	out      io.Writer
	width    int
}

// NewCommandRunner creates a runner for one round-trip command.
func NewCommandRunner(config RunnerConfig) *CommandRunner {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	return &CommandRunner{
		config:   config,
		exchange: NewExchange(),
		replies:  -1,
		out:      config.Output,
		width:    GetTerminalWidth(),
	}
}

// Reporter observes one direction of the round-trip. Pass it as the
// session reporter: each reported frame advances the exchange display
// and is appended to the verbose hex/ASCII trace.
func (r *CommandRunner) Reporter(dir string, frame []byte) {
	if line := r.exchange.Observe(dir, len(frame)); line != "" {
		_, _ = fmt.Fprintln(r.out, line)
	}
	glyph := glyphOutbound
	if dir == "inbound" {
		glyph = glyphInbound
	}
	fmt.Fprintf(&r.trace, "%s %s (%d bytes)\n%s\n", glyph, dir, len(frame), hex.Dump(frame))
}

// RecordReplies notes how many parsed messages the device answered
// with, for the outcome box. Without it the replies row is omitted,
// which is right for a Control round-trip that discards its replies.
func (r *CommandRunner) RecordReplies(n int) {
	r.replies = n
}

// Run executes op between the banner and the outcome box. op performs
// the round-trip; the exchange leg lines appear as its frames are
// reported. On failure the leg the round-trip died on is marked and
// troubleshooting hints are rendered with the outcome.
func (r *CommandRunner) Run(op func() error) error {
	banner := &Banner{
		Op:      r.config.Op,
		Command: r.config.Command,
		Device:  r.config.Device,
		Addr:    r.config.Addr,
		Proto:   r.config.Proto,
		Detail:  r.config.Detail,
		Width:   r.width,
	}
	_, _ = fmt.Fprintln(r.out, banner.Render())
	_, _ = fmt.Fprintln(r.out)

	start := time.Now()
	err := op()
	duration := time.Since(start)

	if err != nil {
		if line := r.exchange.Fail(); line != "" {
			_, _ = fmt.Fprintln(r.out, line)
		}
	}
	_, _ = fmt.Fprintln(r.out)

	outcome := &Outcome{
		Op:       r.config.Op,
		Device:   r.config.Device,
		Replies:  r.replies,
		Duration: duration,
		Err:      err,
		Width:    r.width,
	}
	if err != nil {
		outcome.Tips = roundTripTips
	}
	_, _ = fmt.Fprintln(r.out, outcome.Render())

	if r.config.Verbose && r.trace.Len() > 0 {
		dump := NewRawOutput(strings.TrimRight(r.trace.String(), "\n"))
		dump.SetWidth(r.width)
		dump.SetTitle(r.config.Op + " wire trace")
		dump.SetMaxLines(maxWireTraceLines)
		_, _ = fmt.Fprintln(r.out)
		_, _ = fmt.Fprintln(r.out, dump.Render())
	}

	return err
}

// roundTripTips are the recovery hints for a failed LAN round-trip.
var roundTripTips = []string{
	"Verify the device is reachable on the LAN and port 6668 is open",
	"Check the local key and protocol version in the device registry",
	"Devices reboot their session after each round-trip; retry the command",
	"Run with --verbose to see the raw wire trace",
}

// maxWireTraceLines caps the verbose dump at a terminal's worth of
// lines; a device round-trip answering with several messages can
// otherwise scroll the whole trace off-screen.
const maxWireTraceLines = 60
