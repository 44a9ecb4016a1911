package theme

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/infrastructure/config"
)

// ErrUnknownTheme is returned when a theme name is not registered.
var ErrUnknownTheme = errors.New("unknown theme")

// Registry is a fixed, read-only mapping from theme name to theme record.
type Registry struct {
	themes map[entity.ThemeName]entity.Theme
}

// NewRegistry validates themes and builds a registry. kind names the
// registry in errors ("bar", "field").
func NewRegistry(kind string, themes map[entity.ThemeName]entity.Theme) (*Registry, error) {
	r := &Registry{
		themes: make(map[entity.ThemeName]entity.Theme, len(themes)),
	}
	for name, t := range themes {
		t.Name = name
		if err := Validate(t); err != nil {
			return nil, fmt.Errorf("%s theme registry: %w", kind, err)
		}
		r.themes[name] = t
	}
	return r, nil
}

// Theme implements port.ThemeProvider.
func (r *Registry) Theme(name entity.ThemeName) (entity.Theme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// Names implements port.ThemeProvider, sorted for stable output.
func (r *Registry) Names() []entity.ThemeName {
	names := make([]entity.ThemeName, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// NewBarRegistry builds the bar registry from defaults and config overrides.
func NewBarRegistry(cfg *config.Config) (*Registry, error) {
	var overrides map[string]config.ThemeColors
	if cfg != nil {
		overrides = cfg.Themes.Bar
	}
	return NewRegistry("bar", merge(DefaultBarThemes(), overrides, false))
}

// NewFieldRegistry builds the location field registry. Field themes always
// carry a highlight; one is derived from tint and background when unset.
func NewFieldRegistry(cfg *config.Config) (*Registry, error) {
	var overrides map[string]config.ThemeColors
	if cfg != nil {
		overrides = cfg.Themes.Field
	}
	return NewRegistry("field", merge(DefaultFieldThemes(), overrides, true))
}

func merge(base map[entity.ThemeName]entity.Theme, overrides map[string]config.ThemeColors, deriveHighlight bool) map[entity.ThemeName]entity.Theme {
	out := make(map[entity.ThemeName]entity.Theme, len(base)+len(overrides))
	for name, t := range base {
		out[name] = t
	}
	for rawName, colors := range overrides {
		name := entity.ThemeName(rawName)
		out[name] = ThemeFromConfig(name, out[name], colors)
	}
	if deriveHighlight {
		for name, t := range out {
			if t.HighlightColor != "" {
				continue
			}
			// invalid colors are reported by NewRegistry
			if h, err := DeriveHighlight(t.TintColor, t.BackgroundColor); err == nil {
				t.HighlightColor = h
				out[name] = t
			}
		}
	}
	return out
}
