package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the block printed before a round-trip starts: which wire
// operation is about to run, against which device, where on the LAN,
// and under which protocol version. Unlike a free-form key/value
// header, the fields are fixed — they are the facts that determine
// whether a Tuya round-trip can succeed at all.
type Banner struct {
	Op      string // wire operation, e.g. "DpQuery", "Control"
	Command string // invoking command line, e.g. "tuyalink get"
	Device  string // device ID, already scrambled for display
	Addr    string // host:port the round-trip dials
	Proto   string // "3.1" or "3.3"
	Detail  string // optional request summary, e.g. `dp 1 = true`
	Width   int
}

var (
	bannerOpStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			PaddingLeft(2)

	bannerCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	bannerKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2)

	bannerValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)
)

// Render draws the banner in a rounded border. Empty fields are
// omitted: a banner for a device with no registered address simply
// has no address line.
func (b *Banner) Render() string {
	width := clampWidth(b.Width)

	lines := []string{
		bannerOpStyle.Render(strings.ToUpper(b.Op)),
		bannerCommandStyle.Render(b.Command),
	}

	fields := [][2]string{
		{"device", b.Device},
		{"address", b.Addr},
		{"proto", b.Proto},
		{"request", b.Detail},
	}
	var fieldLines []string
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		key := bannerKeyStyle.Render(fmt.Sprintf("%-8s", f[0]))
		fieldLines = append(fieldLines, key+" "+bannerValueStyle.Render(f[1]))
	}
	if len(fieldLines) > 0 {
		dividerWidth := width - 6
		if dividerWidth < 10 {
			dividerWidth = 10
		}
		divider := lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Render(strings.Repeat("─", dividerWidth))
		lines = append(lines, divider)
		lines = append(lines, fieldLines...)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer.
func (b *Banner) String() string {
	return b.Render()
}
