package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXDGPaths(t *testing.T) {
	t.Run("config dir honours XDG_CONFIG_HOME", func(t *testing.T) {
		base := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", base)

		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "urlbar"), dir)

		file, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "urlbar", "config.toml"), file)
	})

	t.Run("man dir honours XDG_DATA_HOME", func(t *testing.T) {
		base := t.TempDir()
		t.Setenv("XDG_DATA_HOME", base)

		dir, err := GetManDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "man", "man1"), dir)
	})

	t.Run("man dir falls back to home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_DATA_HOME", "")
		t.Setenv("HOME", home)

		dir, err := GetManDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "man", "man1"), dir)
	})

	t.Run("log dir prefers config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.LogDir = "/var/tmp/urlbar-logs"

		dir, err := GetLogDir(cfg)
		require.NoError(t, err)
		assert.Equal(t, "/var/tmp/urlbar-logs", dir)
	})

	t.Run("log dir honours XDG_STATE_HOME", func(t *testing.T) {
		base := t.TempDir()
		t.Setenv("XDG_STATE_HOME", base)

		dir, err := GetLogDir(DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "urlbar", "logs"), dir)
	})
}
