package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// A round-trip has exactly two legs: the request frame goes out, the
// reply frame comes back. Exchange tracks them as a session reporter
// observes each direction, so the CLI can show the round-trip's shape
// instead of a generic N-step progress list.

// LegStatus is the lifecycle of one direction of a round-trip.
type LegStatus int

const (
	LegWaiting LegStatus = iota
	LegInFlight
	LegDone
	LegFailed
)

// Leg is one direction of the round-trip: the outbound request or the
// inbound reply.
type Leg struct {
	Glyph  string // direction arrow: "→" outbound, "←" inbound
	Label  string
	Status LegStatus
	Bytes  int // frame size once the leg completes
}

// Exchange is the send/read leg pair of a single round-trip. The send
// leg starts in flight, since a round-trip begins transmitting as soon
// as the transport is up.
type Exchange struct {
	Send Leg
	Read Leg
}

// NewExchange returns an exchange awaiting its outbound frame.
func NewExchange() *Exchange {
	return &Exchange{
		Send: Leg{Glyph: glyphOutbound, Label: "send request", Status: LegInFlight},
		Read: Leg{Glyph: glyphInbound, Label: "read response", Status: LegWaiting},
	}
}

// Observe advances the exchange for one reported frame of n bytes: an
// outbound frame completes the send leg and puts the read leg in
// flight, an inbound frame completes the read leg. It returns the
// rendered line for the leg that just completed, or "" for a direction
// the exchange doesn't recognize.
func (e *Exchange) Observe(dir string, n int) string {
	switch dir {
	case "outbound":
		e.Send.Status = LegDone
		e.Send.Bytes = n
		e.Read.Status = LegInFlight
		return e.Send.render()
	case "inbound":
		e.Read.Status = LegDone
		e.Read.Bytes = n
		return e.Read.render()
	}
	return ""
}

// Fail marks the leg the round-trip died on as failed and returns its
// rendered line. A failure before any frame went out lands on the send
// leg; after the request was transmitted it lands on the read leg.
func (e *Exchange) Fail() string {
	if e.Send.Status != LegDone {
		e.Send.Status = LegFailed
		return e.Send.render()
	}
	if e.Read.Status != LegDone {
		e.Read.Status = LegFailed
		return e.Read.render()
	}
	return ""
}

const (
	glyphOutbound = "→"
	glyphInbound  = "←"
	glyphDone     = "✓"
	glyphFailed   = "✗"
	glyphPending  = "…"
)

var (
	legDoneStyle     = lipgloss.NewStyle().Foreground(SuccessColor)
	legInFlightStyle = lipgloss.NewStyle().Foreground(WarningColor)
	legFailedStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	legWaitingStyle  = lipgloss.NewStyle().Foreground(MutedColor)
	legBytesStyle    = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)
)

func (l Leg) render() string {
	var style lipgloss.Style
	var marker string
	switch l.Status {
	case LegDone:
		style, marker = legDoneStyle, glyphDone
	case LegInFlight:
		style, marker = legInFlightStyle, glyphPending
	case LegFailed:
		style, marker = legFailedStyle, glyphFailed
	default:
		style, marker = legWaitingStyle, glyphPending
	}

	line := fmt.Sprintf("  %s %-14s %s", l.Glyph, l.Label, marker)
	out := style.Render(line)
	if l.Bytes > 0 {
		out += legBytesStyle.Render(fmt.Sprintf("  (%d bytes)", l.Bytes))
	}
	return out
}
