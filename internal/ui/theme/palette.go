// Package theme provides the address bar's named theme registries.
package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/domain/validation"
	"github.com/bnema/urlbar/internal/infrastructure/config"
)

// highlightBlend is how far a derived highlight moves from the tint toward
// the background.
const highlightBlend = 0.6

// DefaultBarThemes returns the built-in themes for the bar itself.
func DefaultBarThemes() map[entity.ThemeName]entity.Theme {
	return map[entity.ThemeName]entity.Theme{
		entity.ThemeNormal: {
			Name:            entity.ThemeNormal,
			TintColor:       "#0a84ff",
			TextColor:       "#15141a",
			ButtonTintColor: "#5b5b66",
			BackgroundColor: "#f9f9fb",
		},
		entity.ThemePrivate: {
			Name:            entity.ThemePrivate,
			TintColor:       "#ac70ff",
			TextColor:       "#fbfbfe",
			ButtonTintColor: "#fbfbfe",
			BackgroundColor: "#20123a",
			HighlightColor:  "#8000d7",
		},
	}
}

// DefaultFieldThemes returns the built-in themes for the editable location
// field.
func DefaultFieldThemes() map[entity.ThemeName]entity.Theme {
	return map[entity.ThemeName]entity.Theme{
		entity.ThemeNormal: {
			Name:            entity.ThemeNormal,
			TintColor:       "#0a84ff",
			TextColor:       "#15141a",
			ButtonTintColor: "#5b5b66",
			BackgroundColor: "#f0f0f4",
		},
		entity.ThemePrivate: {
			Name:            entity.ThemePrivate,
			TintColor:       "#ac70ff",
			TextColor:       "#fbfbfe",
			ButtonTintColor: "#fbfbfe",
			BackgroundColor: "#42414d",
		},
	}
}

// Coalesce returns the first non-empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ThemeFromConfig merges config overrides over base.
func ThemeFromConfig(name entity.ThemeName, base entity.Theme, c config.ThemeColors) entity.Theme {
	return entity.Theme{
		Name:            name,
		TintColor:       Coalesce(c.Tint, base.TintColor),
		TextColor:       Coalesce(c.Text, base.TextColor),
		ButtonTintColor: Coalesce(c.ButtonTint, base.ButtonTintColor),
		BackgroundColor: Coalesce(c.Background, base.BackgroundColor),
		HighlightColor:  Coalesce(c.Highlight, base.HighlightColor),
	}
}

// Validate checks that every set color of t is a valid hex color and that
// the required colors are present.
func Validate(t entity.Theme) error {
	prefix := string(t.Name)
	if errs := validation.ValidateThemeHex(prefix, t.TintColor, t.TextColor, t.ButtonTintColor, t.BackgroundColor, t.HighlightColor); len(errs) > 0 {
		return fmt.Errorf("invalid theme: %s", errs[0])
	}
	if t.TintColor == "" || t.TextColor == "" || t.ButtonTintColor == "" || t.BackgroundColor == "" {
		return fmt.Errorf("invalid theme %q: tint, text, button tint and background are required", t.Name)
	}
	return nil
}

// ParseColor parses a hex color. The alpha byte of #RRGGBBAA is returned
// separately in [0,1]; other forms are opaque.
func ParseColor(hex string) (colorful.Color, float64, error) {
	if !validation.IsHexColor(hex) {
		return colorful.Color{}, 0, fmt.Errorf("invalid hex color: %s", hex)
	}
	alpha := 1.0
	if len(hex) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(hex[7:], "%02x", &a); err != nil {
			return colorful.Color{}, 0, fmt.Errorf("invalid alpha in %s: %w", hex, err)
		}
		alpha = float64(a) / 255
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, 0, err
	}
	return c, alpha, nil
}

// DeriveHighlight blends tint toward background, giving a selection color
// that stays readable on the theme background.
func DeriveHighlight(tint, background string) (string, error) {
	t, _, err := ParseColor(tint)
	if err != nil {
		return "", err
	}
	bg, _, err := ParseColor(background)
	if err != nil {
		return "", err
	}
	return t.BlendRgb(bg, highlightBlend).Clamped().Hex(), nil
}
