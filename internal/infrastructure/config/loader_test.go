package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "normal", mgr.viper.GetString("address_bar.default_theme"))
	assert.True(t, mgr.viper.GetBool("animation.enabled"))
	assert.Equal(t, 300, mgr.viper.GetInt("animation.tab_count_duration_ms"))
}

func TestLoad_CreatesDefaultConfigOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManager(dir)
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	_, statErr := os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, statErr)

	cfg := mgr.Get()
	assert.Equal(t, "normal", cfg.AddressBar.DefaultTheme)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.AddressBar.ShowToolbar)
	assert.NotNil(t, cfg.Themes.Bar)
}

func TestLoad_ReadsThemeOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `
[address_bar]
default_theme = "Private"
show_toolbar = false

[themes.bar.private]
tint = "#ff0000"
background = "#101010"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))

	mgr, err := NewManager(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "private", cfg.AddressBar.DefaultTheme)
	assert.False(t, cfg.AddressBar.ShowToolbar)
	require.Contains(t, cfg.Themes.Bar, "private")
	assert.Equal(t, "#ff0000", cfg.Themes.Bar["private"].Tint)
	assert.Equal(t, "#101010", cfg.Themes.Bar["private"].Background)
	assert.Empty(t, cfg.Themes.Bar["private"].Text)
}

func TestLoad_EnvOverridesLogLevel(t *testing.T) {
	t.Setenv("URLBAR_LOG_LEVEL", "debug")

	mgr, err := NewManager(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "debug", mgr.Get().Logging.Level)
}

func TestLoad_RejectsInvalidThemeColor(t *testing.T) {
	dir := t.TempDir()
	content := `
[themes.field.normal]
tint = "blue"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))

	mgr, err := NewManager(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "themes.field.normal.tint")
}

func TestSave_WritesAndNotifies(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManager(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var notified *Config
	calls := 0
	unregister := mgr.OnConfigChange(func(c *Config) { notified = c; calls++ })

	cfg := mgr.Get()
	cfg.AddressBar.DefaultTheme = "private"
	require.NoError(t, mgr.Save(cfg))

	require.NotNil(t, notified)
	assert.Equal(t, "private", notified.AddressBar.DefaultTheme)
	assert.Equal(t, "private", mgr.Get().AddressBar.DefaultTheme)

	unregister()
	require.NoError(t, mgr.Save(cfg))
	assert.Equal(t, 1, calls)

	reloaded, err := NewManager(dir)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "private", reloaded.Get().AddressBar.DefaultTheme)
}

func TestSave_RejectsInvalidConfig(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Animation.TabCountDamping = 3
	assert.Error(t, mgr.Save(cfg))
	assert.Error(t, mgr.Save(nil))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Logging.Level = " WARN "
	cfg.Logging.Format = "xml"

	normalizeConfig(cfg)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
	assert.Equal(t, "normal", cfg.AddressBar.DefaultTheme)
	assert.NotNil(t, cfg.Themes.Bar)
	assert.NotNil(t, cfg.Themes.Field)
}

func TestGet_BeforeLoadReturnsDefaults(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), mgr.Get())
}
