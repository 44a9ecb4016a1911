// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/urlbar/internal/application/port"
	"github.com/bnema/urlbar/internal/domain/entity"
)

// Theme holds lipgloss colors and styles derived from a bar theme.
type Theme struct {
	// Base colors (from the bar theme)
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	ActiveButton   lipgloss.Style
	InactiveButton lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// DefaultDarkTheme returns the fallback colors used when no bar theme
// resolves.
func DefaultDarkTheme() entity.Theme {
	return entity.Theme{
		Name:            "cli",
		TintColor:       "#4ade80",
		TextColor:       "#ffffff",
		ButtonTintColor: "#909090",
		BackgroundColor: "#1a1a1b",
		HighlightColor:  "#333333",
	}
}

// NewTheme creates a Theme from the named bar theme, falling back to the
// dark defaults.
func NewTheme(themes port.ThemeProvider, name string) *Theme {
	if themes != nil {
		if t, ok := themes.Theme(entity.ThemeName(name)); ok {
			return NewThemeFromBar(t)
		}
	}
	return NewThemeFromBar(DefaultDarkTheme())
}

// NewThemeFromBar creates a Theme from a bar theme record.
func NewThemeFromBar(bar entity.Theme) *Theme {
	border := bar.HighlightColor
	if border == "" {
		border = bar.ButtonTintColor
	}

	t := &Theme{
		Background: lipgloss.Color(bar.BackgroundColor),
		Surface:    lipgloss.Color(bar.BackgroundColor),
		Text:       lipgloss.Color(bar.TextColor),
		Muted:      lipgloss.Color(bar.ButtonTintColor),
		Accent:     lipgloss.Color(bar.TintColor),
		Border:     lipgloss.Color(border),

		// Semantic colors (not in themes, use sensible defaults)
		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color(bar.TintColor),
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.ActiveButton = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 2).
		Bold(true)

	t.InactiveButton = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Padding(0, 2)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Border).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
}
