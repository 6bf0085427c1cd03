package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuyalink/tuyalink/display"
)

// Action is one of the three round-trip commands a device accepts.
type Action int

const (
	ActionGet Action = iota
	ActionSet
	ActionRefresh
)

func (a Action) String() string {
	switch a {
	case ActionGet:
		return "Get (DpQuery)"
	case ActionSet:
		return "Set (Control)"
	case ActionRefresh:
		return "Refresh (DpRefresh)"
	default:
		return "unknown"
	}
}

var allActions = []Action{ActionGet, ActionSet, ActionRefresh}

type actionKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	NextTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func (k actionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Back, k.Quit}
}

func (k actionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Choose}, {k.NextTab, k.Back, k.Quit}}
}

// ActionModel lets the operator pick an action for the selected
// device and, for Set, enter the datapoint to change.
type ActionModel struct {
	DeviceID string

	Cursor int
	Keys   actionKeyMap
	Help   help.Model

	enteringDP bool
	dpKey      textinput.Model
	dpValue    textinput.Model

	Chosen   bool
	Selected Action
	DPKey    string
	DPValue  string

	Width, Height int
}

// NewActionModel builds the action picker for deviceID.
func NewActionModel(deviceID string) ActionModel {
	dpKey := textinput.New()
	dpKey.Placeholder = "1"
	dpKey.CharLimit = 8
	dpKey.Width = 10

	dpValue := textinput.New()
	dpValue.Placeholder = "true"
	dpValue.CharLimit = 64
	dpValue.Width = 30

	keys := actionKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}

	return ActionModel{
		DeviceID: deviceID,
		Keys:     keys,
		Help:     help.New(),
		dpKey:    dpKey,
		dpValue:  dpValue,
	}
}

func (m ActionModel) Init() tea.Cmd { return nil }

func (m ActionModel) Update(msg tea.Msg) (ActionModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.enteringDP {
			return m.updateDPEntry(msg)
		}
		switch {
		case key.Matches(msg, m.Keys.Up):
			if m.Cursor > 0 {
				m.Cursor--
			}
		case key.Matches(msg, m.Keys.Down):
			if m.Cursor < len(allActions)-1 {
				m.Cursor++
			}
		case key.Matches(msg, m.Keys.Choose):
			action := allActions[m.Cursor]
			if action == ActionSet {
				m.enteringDP = true
				m.dpKey.Focus()
				return m, textinput.Blink
			}
			m.Chosen = true
			m.Selected = action
		}
	}
	return m, nil
}

func (m ActionModel) updateDPEntry(msg tea.KeyMsg) (ActionModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.enteringDP = false
		m.dpKey.Blur()
		m.dpValue.Blur()
		return m, nil
	case "tab":
		if m.dpKey.Focused() {
			m.dpKey.Blur()
			m.dpValue.Focus()
		} else {
			m.dpValue.Blur()
			m.dpKey.Focus()
		}
		return m, textinput.Blink
	case "enter":
		if m.dpKey.Value() == "" {
			return m, nil
		}
		m.DPKey = m.dpKey.Value()
		m.DPValue = m.dpValue.Value()
		m.Chosen = true
		m.Selected = ActionSet
		return m, nil
	}

	var cmd tea.Cmd
	if m.dpKey.Focused() {
		m.dpKey, cmd = m.dpKey.Update(msg)
	} else {
		m.dpValue, cmd = m.dpValue.Update(msg)
	}
	return m, cmd
}

func (m ActionModel) View() string {
	var b strings.Builder
	b.WriteString(renderTitle(fmt.Sprintf("Device %s", display.Format(m.DeviceID))))
	b.WriteString("\n\n")

	if m.enteringDP {
		b.WriteString("Control command — enter the datapoint to set:\n\n")
		b.WriteString(fmt.Sprintf("  dp key:   %s\n", m.dpKey.View()))
		b.WriteString(fmt.Sprintf("  dp value: %s\n", m.dpValue.View()))
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("tab to switch fields, enter to send, esc to cancel"))
	} else {
		for i, a := range allActions {
			if i == m.Cursor {
				b.WriteString(selectedMenuItemStyle.Render("→ " + a.String()))
			} else {
				b.WriteString(menuItemStyle.Render(a.String()))
			}
			b.WriteString("\n")
		}
	}

	return renderApplicationContainer(b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}
