package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHexColor(t *testing.T) {
	valid := []string{"#fff", "#FFFFFF", "#0a84ff", "#0a84ff80"}
	for _, v := range valid {
		assert.True(t, IsHexColor(v), v)
	}
	invalid := []string{"", "fff", "#ff", "#fffff", "#gggggg", "red"}
	for _, v := range invalid {
		assert.False(t, IsHexColor(v), v)
	}
}

func TestValidateThemeHex(t *testing.T) {
	assert.Empty(t, ValidateThemeHex("themes.bar.normal", "#000", "", "#123456", "", ""))

	errs := ValidateThemeHex("themes.bar.private", "blue", "#fff", "", "#12", "")
	assert.Equal(t, []string{
		"themes.bar.private.tint must be a hex color like #RRGGBB",
		"themes.bar.private.background must be a hex color like #RRGGBB",
	}, errs)
}
