package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuyalink/tuyalink/display"
	"github.com/tuyalink/tuyalink/internal/config"
	"github.com/tuyalink/tuyalink/internal/ui"
)

// deviceItem wraps a registry entry for use with bubbles/list.
type deviceItem struct {
	id     string
	device *config.Device
}

func (d deviceItem) FilterValue() string {
	return d.id + " " + d.device.Nickname + " " + d.device.LastIP
}

func (d deviceItem) Title() string {
	if d.device.Nickname != "" {
		return d.device.Nickname
	}
	return display.Format(d.id)
}

func (d deviceItem) Description() string {
	addr := d.device.LastIP
	if addr == "" {
		addr = "no known address"
	}
	return fmt.Sprintf("%s • v%s • %s", display.Format(d.id), d.device.Version, addr)
}

// deviceDelegate is a custom list delegate rendering one registry
// device per bordered card.
type deviceDelegate struct {
	width int
}

func (d deviceDelegate) Height() int  { return 6 }
func (d deviceDelegate) Spacing() int { return 1 }

func (d deviceDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d deviceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	di, ok := item.(deviceItem)
	if !ok {
		return
	}
	selected := index == m.Index()

	var content strings.Builder
	name := di.Title()
	if selected {
		content.WriteString(selectedMenuItemStyle.Render("→ " + name))
	} else {
		content.WriteString("  " + name)
	}
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("  Device:  %s\n", display.Format(di.id)))
	content.WriteString(fmt.Sprintf("  Version: %s\n", di.device.Version))
	addr := di.device.LastIP
	if addr == "" {
		addr = "unknown (use refresh or registry to set one)"
	}
	content.WriteString(fmt.Sprintf("  Address: %s", addr))

	style := cardStyle
	cardWidth := d.width - 6
	if cardWidth < MinTerminalWidth-6 {
		cardWidth = MinTerminalWidth - 6
	}
	style = style.Width(cardWidth)
	if selected {
		style = style.BorderForeground(ui.SuccessColor)
	}

	fmt.Fprint(w, style.Render(content.String()))
}

// deviceListKeyMap defines key bindings for the device picker screen.
type deviceListKeyMap struct {
	Enter key.Binding
	Quit  key.Binding
}

func (k deviceListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Quit}
}

func (k deviceListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Enter, k.Quit}}
}

// DeviceListModel is the device-picker screen: every device currently
// in the registry, newest-seen first.
type DeviceListModel struct {
	List     list.Model
	Selected bool
	Keys     deviceListKeyMap
	Help     help.Model
	Width    int
	Height   int
}

// NewDeviceListModel builds a device picker over registry's devices.
func NewDeviceListModel(registry *config.Registry) DeviceListModel {
	ids := make([]string, 0, len(registry.Devices))
	for id := range registry.Devices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return registry.Devices[ids[i]].LastSeen.After(registry.Devices[ids[j]].LastSeen)
	})

	items := make([]list.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, deviceItem{id: id, device: registry.Devices[id]})
	}

	delegate := deviceDelegate{width: MinTerminalWidth}
	l := list.New(items, delegate, 0, 0)
	l.Title = "Registered devices"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	keys := deviceListKeyMap{
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}

	return DeviceListModel{List: l, Keys: keys, Help: help.New()}
}

func (m DeviceListModel) Init() tea.Cmd { return nil }

func (m DeviceListModel) Update(msg tea.Msg) (DeviceListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.List.SetSize(msg.Width-8, msg.Height-12)
		return m, nil
	case tea.KeyMsg:
		if m.List.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.Keys.Enter):
			if len(m.List.Items()) > 0 {
				m.Selected = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// SelectedDevice returns the currently highlighted device, or nil if
// the registry is empty.
func (m DeviceListModel) SelectedDevice() *deviceItem {
	item, ok := m.List.SelectedItem().(deviceItem)
	if !ok {
		return nil
	}
	return &item
}

func (m DeviceListModel) View() string {
	content := m.List.View()
	if len(m.List.Items()) == 0 {
		content = subtitleStyle.Render(
			"No devices registered yet.\n\nAdd one with `tuyalink registry add` first.",
		)
	}
	help := m.Help.View(m.Keys)
	return renderApplicationContainer(content, help, m.Width, m.Height)
}
