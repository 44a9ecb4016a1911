// Package validation holds pure value checks shared by config and UI.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// IsHexColor reports whether value is #RGB, #RRGGBB or #RRGGBBAA.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidateThemeHex checks the non-empty colors of a theme record.
// Empty values are allowed; they inherit the built-in color.
func ValidateThemeHex(prefix, tint, text, buttonTint, background, highlight string) []string {
	var errs []string

	fields := []struct {
		name  string
		value string
	}{
		{"tint", tint},
		{"text", text},
		{"button_tint", buttonTint},
		{"background", background},
		{"highlight", highlight},
	}
	for _, f := range fields {
		if f.value != "" && !IsHexColor(f.value) {
			errs = append(errs, prefix+"."+f.name+" must be a hex color like #RRGGBB")
		}
	}

	return errs
}
