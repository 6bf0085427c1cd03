// Package ui renders the tuyalink CLI's output for a device
// round-trip with Lipgloss. Unlike the interactive TUI, these
// components follow a "run once and exit" pattern.
//
// # Architecture
//
// The components mirror the round-trip itself rather than a generic
// step pipeline:
//
//   - Banner: what is about to happen — operation, device, address,
//     protocol version
//   - Exchange: the round-trip's two legs (send request, read
//     response), advanced by the session reporter as frames move
//   - Outcome: what happened — reply count and duration, or the
//     taxonomy error plus troubleshooting hints
//   - RawOutput: the hex/ASCII wire trace, in verbose mode
//
// CommandRunner orchestrates the banner → exchange → outcome flow and
// doubles as the session reporter feeding the exchange.
//
// # Usage Pattern
//
//	runner := ui.NewCommandRunner(ui.RunnerConfig{
//	    Op:      "DpQuery",
//	    Command: "tuyalink get",
//	    Device:  "...1b659",
//	    Addr:    "192.168.1.40:6668",
//	    Proto:   "3.3",
//	    Verbose: verbose,
//	})
//	d, err := session.New(proto, devID, key, ip,
//	    session.WithReporter(runner.Reporter))
//	...
//	err = runner.Run(func() error {
//	    msgs, err := d.Get(q, seq)
//	    if err != nil {
//	        return err
//	    }
//	    runner.RecordReplies(len(msgs))
//	    return nil
//	})
//
// # Logging Integration
//
// This package expects logging to be controlled via the
// TUYALINK_LOG_LEVEL environment variable. When unset or empty, zap
// logging is silent, allowing the curated UI output to be displayed
// cleanly. Set TUYALINK_LOG_LEVEL to "debug", "info", "warn", or
// "error" to enable logging output.
//
// # Verbose Mode
//
// When --verbose is passed to a command, the RawOutput component
// displays every reported frame's hex and ASCII dump after the
// outcome box. This is useful for diagnosing a device that won't
// parse.
package ui
