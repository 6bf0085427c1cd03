package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette shared by the CLI components and the TUI.
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // banner borders, titles
	SuccessColor = lipgloss.Color("#43BF6D") // completed legs, success boxes
	ErrorColor   = lipgloss.Color("#FF5555") // failed legs, failure boxes
	WarningColor = lipgloss.Color("#FFA500") // in-flight legs, confirmations
	MutedColor   = lipgloss.Color("#626262") // field keys, notes, borders
	TextColor    = lipgloss.Color("#FFFFFF") // field values
)

// Layout bounds. A wire-trace hex dump line is 78 columns, so the
// usable range is narrower than a typical full-width terminal.
const (
	MinTerminalWidth = 60
	MaxContentWidth  = 100
)

// GetTerminalWidth returns the current terminal width clamped to the
// layout bounds, falling back to the minimum when stdout is not a
// terminal.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

func clampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
