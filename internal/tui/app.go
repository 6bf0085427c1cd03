package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuyalink/tuyalink/display"
	"github.com/tuyalink/tuyalink/internal/config"
	"github.com/tuyalink/tuyalink/internal/ui"
)

// Screen identifies which of the app's sub-models is currently live.
type Screen string

const (
	ScreenDeviceList Screen = "device-list"
	ScreenAction     Screen = "action"
	ScreenRunning    Screen = "running"
	ScreenResult     Screen = "result"
)

type resultKeyMap struct {
	Again key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func (k resultKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Again, k.Back, k.Quit} }
func (k resultKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Again, k.Back, k.Quit}}
}

// AppModel is the top-level coordinator: it owns the registry and
// routes messages to whichever screen is active.
type AppModel struct {
	registry    *config.Registry
	monitorAddr string

	screen Screen

	deviceList DeviceListModel
	action     ActionModel

	spinner spinner.Model

	resultTitle string
	resultErr   error
	resultMsgs  int
	resultKeys  resultKeyMap
	help        help.Model

	width, height int
}

// NewAppModel builds the application starting at the device picker.
// monitorAddr, if non-empty, is the address of a running
// `tuyalink monitor` server; every round-trip the app performs reports
// its frames there.
func NewAppModel(registry *config.Registry, monitorAddr string) AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return AppModel{
		registry:    registry,
		monitorAddr: monitorAddr,
		screen:      ScreenDeviceList,
		deviceList:  NewDeviceListModel(registry),
		spinner:     s,
		resultKeys: resultKeyMap{
			Again: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "another device")),
			Back:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
			Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		},
		help: help.New(),
	}
}

func (m AppModel) Init() tea.Cmd { return nil }

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case roundTripResultMsg:
		m.screen = ScreenResult
		m.resultErr = msg.err
		m.resultMsgs = len(msg.messages)
		if msg.action == ActionSet {
			// Control discards its replies; don't render a zero count.
			m.resultMsgs = -1
		}
		m.resultTitle = msg.action.String()
		if msg.err == nil {
			if dev := m.currentDevice(); dev != nil {
				dev.LastSeen = time.Now()
				_ = m.registry.Save()
			}
		}
		return m, nil
	}

	switch m.screen {
	case ScreenDeviceList:
		return m.updateDeviceList(msg)
	case ScreenAction:
		return m.updateAction(msg)
	case ScreenRunning:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case ScreenResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m AppModel) updateDeviceList(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.deviceList.Update(msg)
	m.deviceList = updated

	if m.deviceList.Selected {
		item := m.deviceList.SelectedDevice()
		if item != nil {
			m.action = NewActionModel(item.id)
			m.screen = ScreenAction
		}
		m.deviceList.Selected = false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "q" {
		return m, tea.Quit
	}

	return m, cmd
}

func (m AppModel) updateAction(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.screen = ScreenDeviceList
		return m, nil
	}

	updated, cmd := m.action.Update(msg)
	m.action = updated

	if m.action.Chosen {
		dev := m.registry.GetDevice(m.action.DeviceID)
		if dev == nil {
			m.screen = ScreenResult
			m.resultErr = fmt.Errorf("device %s is no longer in the registry", display.Format(m.action.DeviceID))
			return m, nil
		}
		m.screen = ScreenRunning
		return m, tea.Batch(
			m.spinner.Tick,
			runAction(m.action.DeviceID, dev, m.action.Selected, m.action.DPKey, m.action.DPValue, m.monitorAddr),
		)
	}

	return m, cmd
}

func (m AppModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "a":
			m.screen = ScreenDeviceList
			return m, nil
		case "b":
			m.screen = ScreenAction
			return m, nil
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m AppModel) currentDevice() *config.Device {
	return m.registry.GetDevice(m.action.DeviceID)
}

func (m AppModel) View() string {
	switch m.screen {
	case ScreenDeviceList:
		return m.deviceList.View()
	case ScreenAction:
		return m.action.View()
	case ScreenRunning:
		content := fmt.Sprintf("%s Talking to %s...", m.spinner.View(), display.Format(m.action.DeviceID))
		return renderApplicationContainer(content, "", m.width, m.height)
	case ScreenResult:
		return renderApplicationContainer(m.renderResult(), m.help.View(m.resultKeys), m.width, m.height)
	default:
		return "unknown screen"
	}
}

func (m AppModel) renderResult() string {
	outcome := ui.Outcome{
		Op:      m.resultTitle,
		Device:  display.Format(m.action.DeviceID),
		Replies: m.resultMsgs,
		Err:     m.resultErr,
		Width:   m.width,
	}
	if m.resultErr != nil {
		outcome.Tips = []string{
			"Verify the device is reachable on the LAN and port 6668 is open",
			"Check the local key and protocol version in the registry entry",
			"Devices reboot their session after each round-trip; try again",
		}
	}
	return outcome.Render()
}
