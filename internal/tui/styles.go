package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuyalink/tuyalink/internal/ui"
	"github.com/tuyalink/tuyalink/internal/version"
)

// Application branding constants
const (
	AppName   = "TUYALINK DEVICE CONSOLE"
	GitHubURL = "github.com/tuyalink/tuyalink"
)

// AppVersion returns the application version from the centralized version package.
func AppVersion() string {
	return version.Version
}

// Layout constants, matching internal/ui's terminal-width conventions.
const (
	MinTerminalWidth = ui.MinTerminalWidth
	MaxContentWidth  = ui.MaxContentWidth
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true)

	menuItemStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(ui.TextColor)

	selectedMenuItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(ui.SuccessColor).
				Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.MutedColor).
			Padding(1, 2).
			MarginLeft(2)
)

// renderTitle renders a screen title in the app's accent color.
func renderTitle(text string) string {
	return titleStyle.Render(text)
}

// buildHeaderContent builds the one-line app banner shown above every screen.
func buildHeaderContent() string {
	return fmt.Sprintf("%s  %s  %s", AppName, AppVersion(), GitHubURL)
}

// renderApplicationContainer is the shared full-screen wrapper every
// screen in this app renders through: header banner, content, and a
// footer carrying context-sensitive help, inside one outer border.
func renderApplicationContainer(content, footerText string, width, height int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	if height < 20 {
		height = 20
	}

	header := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(ui.MutedColor).
		Width(width - 4).
		Padding(0, 1).
		Render(subtitleStyle.Render(buildHeaderContent()))

	footer := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(ui.MutedColor).
		Width(width - 4).
		Padding(0, 1).
		Render(footerText)

	body := lipgloss.NewStyle().Width(width - 4).Render(content)

	inner := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ui.PrimaryColor).
		Width(width - 2).
		Height(height - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)
}
