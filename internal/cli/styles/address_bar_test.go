package styles_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/urlbar/internal/cli/styles"
	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/ui/component"
)

func displayState() component.AddressBarState {
	return component.AddressBarState{
		Mode:                 entity.ModeDisplay,
		LocationText:         "example.com",
		ReaderMode:           entity.ReaderModeUnavailable,
		TabCountText:         "3",
		ActionButtonsVisible: true,
		Theme:                entity.ThemeNormal,
		TintColor:            "#0a84ff",
		TextColor:            "#15141a",
		ButtonTintColor:      "#5b5b66",
		BackgroundColor:      "#f9f9fb",
	}
}

func TestAddressBarRenderer_DisplayMode(t *testing.T) {
	r := styles.NewAddressBarRenderer(styles.NewThemeFromBar(styles.DefaultDarkTheme()))

	out := r.Render(displayState(), 60)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "example.com")
	assert.Contains(t, lines[0], "3")
	assert.NotContains(t, lines[0], "Cancel")
	assert.Equal(t, 60, lipgloss.Width(lines[0]))
}

func TestAddressBarRenderer_SearchModeShowsFieldAndCancel(t *testing.T) {
	r := styles.NewAddressBarRenderer(styles.NewThemeFromBar(styles.DefaultDarkTheme()))
	s := displayState()
	s.Mode = entity.ModeSearch
	s.FieldPresent = true
	s.FieldText = "exa"
	s.FieldAutocompletion = "mple.org"
	s.CancelVisible = true

	out := r.Render(s, 60)

	assert.Contains(t, out, "exa")
	assert.Contains(t, out, "mple.org")
	assert.Contains(t, out, "Cancel")
	assert.NotContains(t, out, "example.com", "location text is hidden while searching")
}

func TestAddressBarRenderer_ProgressLine(t *testing.T) {
	r := styles.NewAddressBarRenderer(styles.NewThemeFromBar(styles.DefaultDarkTheme()))
	s := displayState()
	s.ProgressVisible = true
	s.Progress = 0.5

	lines := strings.Split(r.Render(s, 40), "\n")

	assert.Equal(t, 20, strings.Count(lines[1], "━"))
}

func TestAddressBarRenderer_BadgeTurnsOverHalfwayThroughFlip(t *testing.T) {
	r := styles.NewAddressBarRenderer(styles.NewThemeFromBar(styles.DefaultDarkTheme()))
	s := displayState()
	s.Flipping = true
	s.CloneText = "4"

	early := strings.Split(r.RenderAt(s, 60, 0.2), "\n")[0]
	assert.Contains(t, early, "3›")
	assert.NotContains(t, early, "4")

	late := strings.Split(r.RenderAt(s, 60, 0.8), "\n")[0]
	assert.Contains(t, late, "›4")
	assert.NotContains(t, late, "3›")

	s.Flipping = false
	s.TabCountText, s.CloneText = "4", ""
	assert.Equal(t, r.RenderAt(s, 60, 1), r.Render(s, 60))
	assert.NotContains(t, r.Render(s, 60), "›")
}

func TestAddressBarRenderer_NarrowWidthIsClamped(t *testing.T) {
	r := styles.NewAddressBarRenderer(styles.NewThemeFromBar(styles.DefaultDarkTheme()))

	lines := strings.Split(r.Render(displayState(), 5), "\n")

	assert.GreaterOrEqual(t, lipgloss.Width(lines[0]), 30)
}

func TestAddressBarRenderer_RenderStatus(t *testing.T) {
	r := styles.NewAddressBarRenderer(styles.NewThemeFromBar(styles.DefaultDarkTheme()))

	out := r.RenderStatus(displayState(), 120, true)

	assert.Contains(t, out, "display")
	assert.Contains(t, out, entity.InfinityTabCount)
	assert.Contains(t, out, "private")
}
