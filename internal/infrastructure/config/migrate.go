package config

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/urlbar/internal/application/port"
)

var _ port.ConfigMigrator = (*Migrator)(nil)

// Migrator implements port.ConfigMigrator: it compares a config file against
// the defaults and adds missing keys.
type Migrator struct {
	// defaultViper holds a Viper instance with all defaults set.
	defaultViper *viper.Viper
	configFile   string
}

// NewMigrator creates a migrator for configFile. Empty means the XDG file.
func NewMigrator(configFile string) (*Migrator, error) {
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return nil, fmt.Errorf("failed to get config file path: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigType("toml")
	m := &Manager{viper: v}
	m.setDefaults()

	return &Migrator{defaultViper: v, configFile: configFile}, nil
}

// ConfigFile returns the file the migrator works on.
func (m *Migrator) ConfigFile() string {
	return m.configFile
}

// CheckMigration reports the default keys missing from the config file.
// It returns nil when the file is absent or complete.
func (m *Migrator) CheckMigration() (*port.MigrationResult, error) {
	if _, err := os.Stat(m.configFile); os.IsNotExist(err) {
		return nil, nil
	}

	userKeys, err := m.getUserConfigKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	missing := findMissingKeys(m.getAllDefaultKeys(), userKeys)
	if len(missing) == 0 {
		return nil, nil
	}

	return &port.MigrationResult{MissingKeys: missing, ConfigFile: m.configFile}, nil
}

// Migrate writes the missing default keys into the config file, keeping the
// user's values. It returns the keys it added.
func (m *Migrator) Migrate() ([]string, error) {
	result, err := m.CheckMigration()
	if err != nil || result == nil {
		return nil, err
	}

	userViper := viper.New()
	userViper.SetConfigFile(m.configFile)
	userViper.SetConfigType("toml")

	// Defaults first, then the file on top.
	mgr := &Manager{viper: userViper}
	mgr.setDefaults()
	if err := userViper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	added := make([]string, 0, len(result.MissingKeys))
	for _, key := range result.MissingKeys {
		userViper.Set(key, userViper.Get(key))
		added = append(added, key)
	}

	if err := userViper.WriteConfig(); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}
	return added, nil
}

// GetKeyInfo returns the type and default value of key.
func (m *Migrator) GetKeyInfo(key string) port.KeyInfo {
	value := m.defaultViper.Get(key)
	if value == nil {
		return port.KeyInfo{Key: key, Type: "unknown", DefaultValue: "unknown"}
	}
	return port.KeyInfo{Key: key, Type: typeName(value), DefaultValue: formatValue(value)}
}

// getAllDefaultKeys returns all keys from the default configuration.
func (m *Migrator) getAllDefaultKeys() []string {
	keys := m.defaultViper.AllKeys()
	sort.Strings(keys)
	return keys
}

// getUserConfigKeys parses the config file and returns its dot-notation keys.
func (m *Migrator) getUserConfigKeys() (map[string]bool, error) {
	data, err := os.ReadFile(m.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]any
	if err := toml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	keys := make(map[string]bool)
	flattenMap(rawConfig, "", keys)
	return keys, nil
}

// flattenMap recursively flattens a nested map to dot-notation keys.
func flattenMap(data map[string]any, prefix string, keys map[string]bool) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if val, ok := v.(map[string]any); ok && !isUserDataSection(key) {
			flattenMap(val, key, keys)
			continue
		}
		keys[key] = true
	}
}

// isUserDataSection reports whether keyPath holds user-defined entries that
// are compared as a whole.
func isUserDataSection(keyPath string) bool {
	switch keyPath {
	case "themes.bar", "themes.field":
		return true
	}
	return false
}

// findMissingKeys returns keys that are in defaults but not in user config.
func findMissingKeys(defaultKeys []string, userKeys map[string]bool) []string {
	missing := make([]string, 0)
	for _, key := range defaultKeys {
		if keyOrRelatedExists(key, userKeys) {
			continue
		}
		missing = append(missing, key)
	}
	sort.Strings(missing)
	return missing
}

// keyOrRelatedExists checks whether key or one of its children is set.
func keyOrRelatedExists(key string, keys map[string]bool) bool {
	if keys[key] {
		return true
	}
	prefix := key + "."
	for k := range keys {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

func typeName(value any) string {
	switch value.(type) {
	case bool:
		return "bool"
	case int, int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	}
	if reflect.ValueOf(value).Kind() == reflect.Map {
		return "table"
	}
	return fmt.Sprintf("%T", value)
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Map && rv.Len() == 0 {
		return "{}"
	}
	return fmt.Sprintf("%v", value)
}
