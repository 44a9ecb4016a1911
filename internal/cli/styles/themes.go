package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/urlbar/internal/application/usecase"
	"github.com/bnema/urlbar/internal/domain/entity"
)

// ThemesRenderer renders the theme registries as swatch tables.
type ThemesRenderer struct {
	theme *Theme
}

// NewThemesRenderer creates a new themes renderer.
func NewThemesRenderer(theme *Theme) *ThemesRenderer {
	return &ThemesRenderer{theme: theme}
}

// Render lists every theme with its bar and field colors. current marks the
// theme applied at startup.
func (r *ThemesRenderer) Render(themes []usecase.ThemeSummary, current string) string {
	if len(themes) == 0 {
		return r.theme.Subtle.Render("No themes configured")
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	parts := []string{fmt.Sprintf("%s %s", iconStyle.Render(IconPalette), r.theme.Title.Render("Themes")), ""}

	for _, s := range themes {
		name := r.theme.Normal.Bold(true).Render(string(s.Name))
		if string(s.Name) == current {
			name += " " + r.theme.Badge.Render("default")
		}
		lines := []string{name, r.renderTheme("bar  ", s.Bar)}
		if s.HasField {
			lines = append(lines, r.renderTheme("field", s.Field))
		} else {
			lines = append(lines, r.theme.WarningStyle.Render("  field  missing: theme cannot be applied"))
		}
		parts = append(parts, r.theme.Box.PaddingTop(0).PaddingBottom(0).Render(strings.Join(lines, "\n")))
	}
	return strings.Join(parts, "\n")
}

func (r *ThemesRenderer) renderTheme(label string, t entity.Theme) string {
	cells := []string{
		Swatch("tint", t.TintColor),
		Swatch("text", t.TextColor),
		Swatch("buttons", t.ButtonTintColor),
		Swatch("background", t.BackgroundColor),
	}
	if t.HasHighlight() {
		cells = append(cells, Swatch("highlight", t.HighlightColor))
	}
	return "  " + r.theme.Subtle.Render(label) + "  " + strings.Join(cells, " ")
}

// Swatch renders a colored block followed by its label and hex value.
func Swatch(label, hex string) string {
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
	return fmt.Sprintf("%s %s %s", block, label, hex)
}
