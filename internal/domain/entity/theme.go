package entity

// ThemeName identifies a theme record in a registry.
type ThemeName string

// Built-in theme names.
const (
	ThemeNormal  ThemeName = "normal"
	ThemePrivate ThemeName = "private"
)

// Theme is a named bundle of colors applied atomically to a component.
// Colors are hex strings (#RGB, #RRGGBB or #RRGGBBAA).
type Theme struct {
	Name            ThemeName
	TintColor       string
	TextColor       string
	ButtonTintColor string
	BackgroundColor string
	// HighlightColor is optional; empty means the component default.
	HighlightColor string
}

// HasHighlight reports whether the theme overrides the highlight color.
func (t Theme) HasHighlight() bool {
	return t.HighlightColor != ""
}
