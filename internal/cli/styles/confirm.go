package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel is a yes/no confirmation dialog. It defaults to "No".
type ConfirmModel struct {
	Message   string
	Yes       bool
	Confirmed bool
	Canceled  bool

	keys  ConfirmKeyMap
	theme *Theme
}

// ConfirmKeyMap defines keybindings for the confirm dialog.
type ConfirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k ConfirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Toggle, k.Confirm, k.Cancel}
}

// FullHelp returns keybindings for expanded help.
func (k ConfirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultConfirmKeyMap returns the default keybindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Toggle:  key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "toggle")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// NewConfirm creates a new confirmation dialog.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{
		Message: message,
		keys:    DefaultConfirmKeyMap(),
		theme:   theme,
	}
}

// Update handles a key press.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.Yes = true
	case key.Matches(keyMsg, m.keys.No):
		m.Yes = false
	case key.Matches(keyMsg, m.keys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(keyMsg, m.keys.Confirm):
		m.Confirmed = true
	case key.Matches(keyMsg, m.keys.Cancel):
		m.Canceled = true
	}
	return m, nil
}

// View renders the dialog box.
func (m ConfirmModel) View() string {
	t := m.theme

	yesStyle, noStyle := t.InactiveButton, t.ActiveButton
	if m.Yes {
		yesStyle, noStyle = t.ActiveButton, t.InactiveButton
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, noStyle.Render(" No "), "  ", yesStyle.Render(" Yes "))

	h := NewStyledHelp(t)
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		t.Title.Render(m.Message),
		"",
		buttons,
		"",
		h.View(m.keys),
	)
	return t.Box.Render(content)
}

// Done returns true if the dialog is complete.
func (m ConfirmModel) Done() bool {
	return m.Confirmed || m.Canceled
}

// Result returns true if user confirmed "Yes".
func (m ConfirmModel) Result() bool {
	return m.Confirmed && m.Yes
}
