package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PreviewKeyMap defines keybindings for the address bar preview.
type PreviewKeyMap struct {
	Focus       key.Binding
	Cancel      key.Binding
	Submit      key.Binding
	Accept      key.Binding
	OpenTab     key.Binding
	CloseTab    key.Binding
	Private     key.Binding
	Toolbar     key.Binding
	Loading     key.Binding
	ReaderMode  key.Binding
	Back        key.Binding
	Forward     key.Binding
	ScrollToTop key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PreviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Cancel, k.Submit, k.OpenTab, k.CloseTab, k.Private, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PreviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Cancel, k.Submit, k.Accept},
		{k.OpenTab, k.CloseTab, k.Private},
		{k.Toolbar, k.Loading, k.ReaderMode, k.ScrollToTop},
		{k.Back, k.Forward},
		{k.Help, k.Quit},
	}
}

// DefaultPreviewKeyMap returns the default preview keybindings. Display
// mode bindings are single keys; search mode only reacts to Cancel, Submit
// and Accept while every other key edits the field.
func DefaultPreviewKeyMap() PreviewKeyMap {
	return PreviewKeyMap{
		Focus: key.NewBinding(
			key.WithKeys("ctrl+l", "/"),
			key.WithHelp("/", "edit location"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go"),
		),
		Accept: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept completion"),
		),
		OpenTab: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "new tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "close tab"),
		),
		Private: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "private mode"),
		),
		Toolbar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bottom toolbar"),
		),
		Loading: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "load/stop"),
		),
		ReaderMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "reader mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "forward"),
		),
		ScrollToTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "scroll to top"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
