package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/infrastructure/config"
)

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AddressBar.FocusDelayMs = 20
	cfg.AddressBar.DefaultTheme = ""

	opts := OptionsFromConfig(cfg)

	assert.Equal(t, entity.ThemeNormal, opts.InitialTheme)
	assert.Equal(t, 20*time.Millisecond, opts.FocusDelay)
	assert.Equal(t, 300*time.Millisecond, opts.TransitionDuration)
	assert.Equal(t, 0.75, opts.TabCountDamping)
}

func TestOptionsFromConfig_DisabledAnimations(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Animation.Enabled = false

	opts := OptionsFromConfig(cfg)

	assert.Zero(t, opts.TransitionDuration)
	assert.Zero(t, opts.TabCountDuration)
}
