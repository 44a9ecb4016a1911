package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/infrastructure/config"
)

func TestNewBarRegistry_Defaults(t *testing.T) {
	r, err := NewBarRegistry(nil)
	require.NoError(t, err)

	assert.Equal(t, []entity.ThemeName{entity.ThemeNormal, entity.ThemePrivate}, r.Names())

	normal, ok := r.Theme(entity.ThemeNormal)
	require.True(t, ok)
	assert.Equal(t, "#f9f9fb", normal.BackgroundColor)
	assert.False(t, normal.HasHighlight())

	private, ok := r.Theme(entity.ThemePrivate)
	require.True(t, ok)
	assert.Equal(t, "#8000d7", private.HighlightColor)
}

func TestRegistry_UnknownTheme(t *testing.T) {
	r, err := NewBarRegistry(nil)
	require.NoError(t, err)

	_, ok := r.Theme("bogus")
	assert.False(t, ok)
	assert.NotContains(t, r.Names(), entity.ThemeName("bogus"))
}

func TestNewBarRegistry_ConfigOverridesMergeWithDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Themes.Bar["private"] = config.ThemeColors{Tint: "#ff0000"}
	cfg.Themes.Bar["sepia"] = config.ThemeColors{
		Tint: "#704214", Text: "#2b1d0e", ButtonTint: "#704214", Background: "#f4ecd8",
	}

	r, err := NewBarRegistry(cfg)
	require.NoError(t, err)

	private, ok := r.Theme(entity.ThemePrivate)
	require.True(t, ok)
	assert.Equal(t, "#ff0000", private.TintColor)
	assert.Equal(t, "#20123a", private.BackgroundColor)

	sepia, ok := r.Theme("sepia")
	require.True(t, ok)
	assert.Equal(t, entity.ThemeName("sepia"), sepia.Name)
}

func TestNewBarRegistry_IncompleteNewThemeIsRejected(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Themes.Bar["half"] = config.ThemeColors{Tint: "#ffffff"}

	_, err := NewBarRegistry(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "half")
}

func TestNewFieldRegistry_DerivesHighlight(t *testing.T) {
	r, err := NewFieldRegistry(nil)
	require.NoError(t, err)

	for _, name := range r.Names() {
		th, ok := r.Theme(name)
		require.True(t, ok)
		assert.True(t, th.HasHighlight(), name)
		_, _, err := ParseColor(th.HighlightColor)
		assert.NoError(t, err, name)
	}
}

func TestDeriveHighlight(t *testing.T) {
	h, err := DeriveHighlight("#000000", "#ffffff")
	require.NoError(t, err)
	assert.Equal(t, "#999999", h)

	_, err = DeriveHighlight("nope", "#ffffff")
	assert.Error(t, err)
}

func TestParseColor_Alpha(t *testing.T) {
	c, alpha, err := ParseColor("#ff000080")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 128.0/255, alpha, 1e-9)

	_, alpha, err = ParseColor("#abc")
	require.NoError(t, err)
	assert.Equal(t, 1.0, alpha)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(DefaultBarThemes()[entity.ThemeNormal]))
	assert.Error(t, Validate(entity.Theme{Name: "x", TintColor: "#fff"}))
	assert.Error(t, Validate(entity.Theme{
		Name: "x", TintColor: "#fff", TextColor: "#fff", ButtonTintColor: "#fff", BackgroundColor: "white",
	}))
}
