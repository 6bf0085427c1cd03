// Package tui is an interactive bubbletea application for working
// with devices already stored in the registry (internal/config): pick
// one from a list, then send it a get, set, or refresh command and
// watch the result without leaving the terminal.
//
// It shares internal/ui's palette and Outcome box rather than
// re-implementing its own result rendering. There is no discovery step: a device has to already be
// paired (key known) before a LAN round-trip can succeed, so the
// list is sourced from the registry alone.
//
// # Usage
//
//	registry, err := config.LoadRegistry()
//	...
//	p := tea.NewProgram(tui.NewAppModel(registry, ""), tea.WithAltScreen())
//	if _, err := p.Run(); err != nil { ... }
package tui
