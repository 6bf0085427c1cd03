package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RawOutput is a box for displaying a raw wire trace (hex/ASCII dump
// of an encoded or decoded frame) in verbose mode.
type RawOutput struct {
	Title    string   // e.g., "Wire Trace"
	Content  string   // the raw dump text
	Lines    []string // Content split by line, for truncation
	Width    int      // Terminal width
	MaxLines int      // Maximum lines to display (0 = unlimited)
}

var (
	rawOutputTitleStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Bold(true)

	rawOutputContentStyle = lipgloss.NewStyle().
				Foreground(TextColor)
)

// NewRawOutput creates a new raw output box.
func NewRawOutput(content string) *RawOutput {
	return &RawOutput{
		Title:    "Wire Trace",
		Content:  content,
		Lines:    strings.Split(content, "\n"),
		Width:    GetTerminalWidth(),
		MaxLines: 0,
	}
}

// SetWidth sets the terminal width for responsive rendering.
func (g *RawOutput) SetWidth(width int) *RawOutput {
	g.Width = width
	return g
}

// SetTitle sets a custom title for the box.
func (g *RawOutput) SetTitle(title string) *RawOutput {
	g.Title = title
	return g
}

// SetMaxLines limits the number of lines displayed.
func (g *RawOutput) SetMaxLines(max int) *RawOutput {
	g.MaxLines = max
	return g
}

// Render returns the styled raw output box as a string.
func (g *RawOutput) Render() string {
	width := clampWidth(g.Width)

	lines := g.Lines
	if g.MaxLines > 0 && len(lines) > g.MaxLines {
		lines = lines[:g.MaxLines]
		lines = append(lines, "... (output truncated)")
	}

	titleStyled := rawOutputTitleStyle.Render(g.Title)
	contentStyled := rawOutputContentStyle.Render(strings.Join(lines, "\n"))
	inner := lipgloss.JoinVertical(lipgloss.Left, titleStyled, "", contentStyled)

	boxWidth := width - 4
	if boxWidth < 40 {
		boxWidth = 40
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(boxWidth).
		Padding(0, 1).
		MarginLeft(2).
		Render(inner)
}

// String implements fmt.Stringer.
func (g *RawOutput) String() string {
	return g.Render()
}
