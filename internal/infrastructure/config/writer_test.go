package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered_IsReadableTOML(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Themes.Bar["private"] = ThemeColors{Tint: "#ac70ff"}
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, cfg.AddressBar, decoded.AddressBar)
	assert.Equal(t, "#ac70ff", decoded.Themes.Bar["private"].Tint)
}

func TestEncodeTOML_NilConfig(t *testing.T) {
	_, err := EncodeTOML(nil)
	assert.Error(t, err)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, schemaID, doc["$id"])
	assert.Contains(t, string(data), "address_bar")
	assert.Contains(t, string(data), "tab_count_damping")
}
