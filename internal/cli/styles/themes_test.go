package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/urlbar/internal/application/usecase"
	"github.com/bnema/urlbar/internal/cli/styles"
	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/ui/theme"
)

func TestThemesRenderer_Render(t *testing.T) {
	bar := theme.DefaultBarThemes()
	r := styles.NewThemesRenderer(styles.NewThemeFromBar(bar[entity.ThemeNormal]))

	out := r.Render([]usecase.ThemeSummary{
		{Name: entity.ThemeNormal, Bar: bar[entity.ThemeNormal], Field: bar[entity.ThemeNormal], HasField: true},
		{Name: "sepia", Bar: bar[entity.ThemeNormal]},
	}, "normal")

	assert.Contains(t, out, "normal")
	assert.Contains(t, out, "default")
	assert.Contains(t, out, "#0a84ff")
	assert.Contains(t, out, "cannot be applied")
}

func TestThemesRenderer_Empty(t *testing.T) {
	r := styles.NewThemesRenderer(styles.NewThemeFromBar(styles.DefaultDarkTheme()))
	assert.Contains(t, r.Render(nil, ""), "No themes")
}

func TestNewTheme_FallsBackToDarkDefaults(t *testing.T) {
	reg, err := theme.NewBarRegistry(nil)
	assert.NoError(t, err)

	got := styles.NewTheme(reg, "missing")
	assert.Equal(t, styles.NewThemeFromBar(styles.DefaultDarkTheme()).Accent, got.Accent)

	got = styles.NewTheme(reg, "private")
	assert.Equal(t, "#ac70ff", string(got.Accent))
}
