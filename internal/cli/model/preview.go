// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/urlbar/internal/cli/styles"
	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/logging"
)

const (
	barTop         = 2
	longPressDelay = 600 * time.Millisecond
)

// Host is the browser screen the preview drives. *Session implements it.
type Host interface {
	Frames() <-chan Frame
	SetOverlay(covered bool)
	SetBounds(top, width int)
	SendTouch(ev entity.TouchEvent)

	FocusLocation()
	Cancel()
	Submit()
	EditField(edit func(text string) string)
	AcceptCompletion()
	Paste(text string)

	OpenTab()
	CloseTab()
	TogglePrivate()
	ToggleToolbar()
	ToggleLoading()
	ToggleReaderMode()
	Back()
	Forward()
	ScrollToTop()
}

type frameMsg Frame

type longPressMsg struct {
	press int
}

// PreviewModel is the Bubble Tea model that renders a live address bar and
// forwards keys and mouse input to it.
type PreviewModel struct {
	host     Host
	help     help.Model
	keys     styles.PreviewKeyMap
	renderer *styles.AddressBarRenderer
	theme    *styles.Theme

	frame    Frame
	hasFrame bool
	showHelp bool
	width    int
	height   int

	// press counts mouse presses; pressing is true until the release.
	press    int
	pressing bool
	pressX   int
	pressY   int

	ctx context.Context
}

// NewPreviewModel creates the preview model for host.
func NewPreviewModel(ctx context.Context, theme *styles.Theme, host Host) PreviewModel {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating preview model")

	return PreviewModel{
		host:     host,
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultPreviewKeyMap(),
		renderer: styles.NewAddressBarRenderer(theme),
		theme:    theme,
		width:    80,
		height:   24,
		ctx:      ctx,
	}
}

// Init implements tea.Model.
func (m PreviewModel) Init() tea.Cmd {
	return waitForFrame(m.host.Frames())
}

func waitForFrame(frames <-chan Frame) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-frames
		if !ok {
			return nil
		}
		return frameMsg(f)
	}
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = Frame(msg)
		m.hasFrame = true
		return m, waitForFrame(m.host.Frames())
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.host.SetBounds(barTop, msg.Width)
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case longPressMsg:
		if m.pressing && msg.press == m.press {
			m.host.SendTouch(m.touch(entity.TouchStationary, m.pressX, m.pressY))
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.frame.Bar.Mode == entity.ModeSearch {
			return m.handleSearchKey(msg)
		}
		return m.handleDisplayKey(msg)
	}
	return m, nil
}

func (m PreviewModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Paste {
		m.host.Paste(string(msg.Runes))
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.host.Cancel()
	case key.Matches(msg, m.keys.Submit):
		m.host.Submit()
	case key.Matches(msg, m.keys.Accept):
		m.host.AcceptCompletion()
	default:
		if edit := fieldEdit(msg); edit != nil {
			m.host.EditField(edit)
		}
	}
	return m, nil
}

// fieldEdit maps a key to a text edit, or nil for keys that do not edit.
func fieldEdit(msg tea.KeyMsg) func(string) string {
	switch msg.Type {
	case tea.KeyRunes:
		typed := string(msg.Runes)
		return func(text string) string { return text + typed }
	case tea.KeySpace:
		return func(text string) string { return text + " " }
	case tea.KeyBackspace:
		return func(text string) string {
			r := []rune(text)
			if len(r) == 0 {
				return text
			}
			return string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		return func(string) string { return "" }
	}
	return nil
}

func (m PreviewModel) handleDisplayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Paste {
		m.host.Paste(string(msg.Runes))
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.host.SetOverlay(m.showHelp)
	case key.Matches(msg, m.keys.Focus):
		m.host.FocusLocation()
	case key.Matches(msg, m.keys.OpenTab):
		m.host.OpenTab()
	case key.Matches(msg, m.keys.CloseTab):
		m.host.CloseTab()
	case key.Matches(msg, m.keys.Private):
		m.host.TogglePrivate()
	case key.Matches(msg, m.keys.Toolbar):
		m.host.ToggleToolbar()
	case key.Matches(msg, m.keys.Loading):
		m.host.ToggleLoading()
	case key.Matches(msg, m.keys.ReaderMode):
		m.host.ToggleReaderMode()
	case key.Matches(msg, m.keys.Back):
		m.host.Back()
	case key.Matches(msg, m.keys.Forward):
		m.host.Forward()
	case key.Matches(msg, m.keys.ScrollToTop):
		m.host.ScrollToTop()
	}
	return m, nil
}

func (m PreviewModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.press++
		m.pressing = true
		m.pressX, m.pressY = msg.X, msg.Y
		m.host.SendTouch(m.touch(entity.TouchBegan, msg.X, msg.Y))
		press := m.press
		return m, tea.Tick(longPressDelay, func(time.Time) tea.Msg {
			return longPressMsg{press: press}
		})
	case tea.MouseActionMotion:
		if !m.pressing {
			return m, nil
		}
		m.host.SendTouch(m.touch(entity.TouchMoved, msg.X, msg.Y))
	case tea.MouseActionRelease:
		if !m.pressing {
			return m, nil
		}
		m.pressing = false
		m.host.SendTouch(m.touch(entity.TouchEnded, msg.X, msg.Y))
	}
	return m, nil
}

func (m PreviewModel) touch(phase entity.TouchPhase, x, y int) entity.TouchEvent {
	now := time.Now()
	return entity.TouchEvent{
		Touches: []entity.TouchPoint{{
			X:         float64(x),
			Y:         float64(y),
			Phase:     phase,
			TapCount:  1,
			Timestamp: now,
		}},
		Timestamp: now,
	}
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	if !m.hasFrame {
		return m.theme.Subtle.Render("starting address bar...")
	}

	title := lipgloss.JoinHorizontal(lipgloss.Left,
		m.theme.Highlight.Render(styles.IconGlobe+" urlbar"),
		" ",
		m.theme.Subtle.Render("preview"),
	)

	sections := []string{
		title,
		"",
		m.renderer.RenderAt(m.frame.Bar, m.width, m.frame.Motion),
		m.renderer.RenderStatus(m.frame.Bar, m.frame.Tabs, m.frame.Private),
		"",
	}
	for _, e := range m.frame.Events {
		sections = append(sections, m.theme.Subtle.Render("  "+e))
	}
	sections = append(sections, "", m.help.View(m.keys))

	return strings.Join(sections, "\n")
}
