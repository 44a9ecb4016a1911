package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
	return path
}

func TestMigrator_CheckMigration_NoConfigFile(t *testing.T) {
	m, err := NewMigrator(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	result, err := m.CheckMigration()
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestMigrator_CheckMigration_CompleteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))
	m, err := NewMigrator(path)
	require.NoError(t, err)

	result, err := m.CheckMigration()
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestMigrator_CheckMigration_ReportsMissingKeys(t *testing.T) {
	path := writeFile(t, `
[logging]
level = "debug"

[themes.bar.normal]
tint = "#ff0000"
`)
	m, err := NewMigrator(path)
	require.NoError(t, err)

	result, err := m.CheckMigration()
	require.NoError(t, err)
	require.NotNil(t, result)

	keys := result.MissingKeys
	assert.Contains(t, keys, "logging.format")
	assert.Contains(t, keys, "animation.enabled")
	assert.Contains(t, keys, "themes.field")
	assert.NotContains(t, keys, "logging.level")
	assert.NotContains(t, keys, "themes.bar")
	assert.IsIncreasing(t, keys)
}

func TestMigrator_MigrateKeepsUserValues(t *testing.T) {
	path := writeFile(t, `
[logging]
level = "debug"
`)
	m, err := NewMigrator(path)
	require.NoError(t, err)

	added, err := m.Migrate()
	require.NoError(t, err)
	assert.Contains(t, added, "animation.tab_count_damping")

	mgr, err := NewManager(filepath.Dir(path))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	assert.Equal(t, "debug", mgr.Get().Logging.Level)
	assert.Equal(t, 0.75, mgr.Get().Animation.TabCountDamping)
}

func TestMigrator_GetKeyInfo(t *testing.T) {
	m, err := NewMigrator(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	info := m.GetKeyInfo("animation.transition_duration_ms")
	assert.Equal(t, "int", info.Type)
	assert.Equal(t, "300", info.DefaultValue)

	info = m.GetKeyInfo("address_bar.default_theme")
	assert.Equal(t, "string", info.Type)
	assert.Equal(t, `"normal"`, info.DefaultValue)

	info = m.GetKeyInfo("nope")
	assert.Equal(t, "unknown", info.Type)
}

func TestKeyOrRelatedExists(t *testing.T) {
	keys := map[string]bool{"themes.bar.normal.tint": true, "logging.level": true}

	assert.True(t, keyOrRelatedExists("logging.level", keys))
	assert.True(t, keyOrRelatedExists("themes.bar.normal", keys))
	assert.False(t, keyOrRelatedExists("logging.format", keys))
}
