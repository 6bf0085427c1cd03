package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Outcome is the box printed after a round-trip finishes: how many
// messages the device answered with and how long the exchange took,
// or the taxonomy error it died with plus recovery hints.
type Outcome struct {
	Op       string
	Device   string        // scrambled device ID
	Replies  int           // parsed reply messages; < 0 when not applicable
	Duration time.Duration // zero when not measured
	Err      error         // nil for success
	Tips     []string      // troubleshooting hints, shown on failure
	Width    int
}

var (
	outcomeSuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	outcomeFailureStyle = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	outcomeErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	outcomeKeyStyle     = lipgloss.NewStyle().Foreground(MutedColor).Width(12)
	outcomeValueStyle   = lipgloss.NewStyle().Foreground(TextColor)
	outcomeTipStyle     = lipgloss.NewStyle().Foreground(MutedColor)
)

// Render draws a double-bordered box, green for success and red for
// failure.
func (o *Outcome) Render() string {
	width := clampWidth(o.Width)
	if o.Err != nil {
		return o.renderFailure(width)
	}
	return o.renderSuccess(width)
}

func (o *Outcome) renderSuccess(width int) string {
	lines := []string{
		"",
		outcomeSuccessStyle.Render(fmt.Sprintf("   %s  %s complete", glyphDone, strings.ToUpper(o.Op))),
		"",
	}
	lines = append(lines, o.fieldLines()...)
	lines = append(lines, "")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(SuccessColor).
		Width(width - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func (o *Outcome) renderFailure(width int) string {
	lines := []string{
		"",
		outcomeFailureStyle.Render(fmt.Sprintf("   %s  %s failed", glyphFailed, strings.ToUpper(o.Op))),
		"",
		outcomeErrorStyle.Render("   error: " + o.Err.Error()),
		"",
	}
	if len(o.Tips) > 0 {
		lines = append(lines, o.renderTips(width), "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// fieldLines renders the device/replies/duration rows, omitting what
// wasn't measured: a Control round-trip discards its replies, and the
// TUI doesn't time its exchanges.
func (o *Outcome) fieldLines() []string {
	var lines []string
	add := func(key, value string) {
		lines = append(lines, outcomeKeyStyle.Render("   "+key+":")+" "+outcomeValueStyle.Render(value))
	}
	if o.Device != "" {
		add("device", o.Device)
	}
	if o.Replies >= 0 {
		add("replies", fmt.Sprintf("%d", o.Replies))
	}
	if o.Duration > 0 {
		add("duration", o.Duration.Round(time.Millisecond).String())
	}
	return lines
}

func (o *Outcome) renderTips(width int) string {
	lines := []string{outcomeTipStyle.Bold(true).Render("Troubleshooting:"), ""}
	for _, tip := range o.Tips {
		lines = append(lines, outcomeTipStyle.Render("  • "+tip))
	}

	innerWidth := width - 12
	if innerWidth < 40 {
		innerWidth = 40
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(innerWidth).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer.
func (o *Outcome) String() string {
	return o.Render()
}
