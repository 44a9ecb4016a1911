package config

import (
	"fmt"
	"strings"

	"github.com/bnema/urlbar/internal/application/port"
	"github.com/bnema/urlbar/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLogging    = "Logging"
	SectionAddressBar = "Address Bar"
	SectionAnimation  = "Animation"
	SectionThemes     = "Themes"
)

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 20)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getAddressBarKeys(defaults)...)
	keys = append(keys, p.getAnimationKeys(defaults)...)
	keys = append(keys, p.getThemeKeys()...)
	for i := range keys {
		keys[i].Env = envVarFor(keys[i].Key)
	}
	return keys
}

// envVarFor mirrors the loader's env binding: explicit aliases first, then
// the URLBAR_ prefix with dots replaced by underscores.
func envVarFor(key string) string {
	switch key {
	case "logging.level":
		return "URLBAR_LOG_LEVEL"
	case "logging.format":
		return "URLBAR_LOG_FORMAT"
	}
	if strings.ContainsAny(key, "<*") {
		return ""
	}
	return "URLBAR_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxAge),
			Description: "Days to keep session logs when clearing",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     "",
			Description: "Session log directory (empty: $XDG_STATE_HOME/urlbar/logs)",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.EnableFileLog),
			Description: "Write preview logs to a session file",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxSizeMB),
			Description: "Rotate a session log past this size",
			Range:       ">=1",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxBackups),
			Description: "Rotated files kept per session",
			Range:       ">=0",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getAddressBarKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "address_bar.default_theme",
			Type:        "string",
			Default:     defaults.AddressBar.DefaultTheme,
			Description: "Theme applied when the address bar is created",
			Values:      []string{string(entity.ThemeNormal), string(entity.ThemePrivate)},
			Section:     SectionAddressBar,
		},
		{
			Key:         "address_bar.show_toolbar",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.AddressBar.ShowToolbar),
			Description: "Navigation buttons live in the bottom toolbar instead of the bar",
			Section:     SectionAddressBar,
		},
		{
			Key:         "address_bar.focus_delay_ms",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.AddressBar.FocusDelayMs),
			Description: "Delay before focusing typed text in search mode (0 = next tick)",
			Range:       ">=0",
			Section:     SectionAddressBar,
		},
		{
			Key:         "address_bar.show_password_manager",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.AddressBar.ShowPasswordManager),
			Description: "Show the password manager action button",
			Section:     SectionAddressBar,
		},
		{
			Key:         "address_bar.search_url",
			Type:        "string",
			Default:     defaults.AddressBar.SearchURL,
			Description: "Search template for submitted text that is not a URL (%s = query)",
			Section:     SectionAddressBar,
		},
	}
}

func (*SchemaProvider) getAnimationKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "animation.enabled",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Animation.Enabled),
			Description: "Disable to complete every animation immediately",
			Section:     SectionAnimation,
		},
		{
			Key:         "animation.transition_duration_ms",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Animation.TransitionDurationMs),
			Description: "Display/search transition duration",
			Range:       ">=0",
			Section:     SectionAnimation,
		},
		{
			Key:         "animation.tab_count_duration_ms",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Animation.TabCountDurationMs),
			Description: "Tab count badge flip duration",
			Range:       ">=0",
			Section:     SectionAnimation,
		},
		{
			Key:         "animation.tab_count_damping",
			Type:        "float64",
			Default:     fmt.Sprintf("%.2f", defaults.Animation.TabCountDamping),
			Description: "Spring damping of the badge flip",
			Range:       "0-1",
			Section:     SectionAnimation,
		},
		{
			Key:         "animation.tab_count_velocity",
			Type:        "float64",
			Default:     fmt.Sprintf("%.1f", defaults.Animation.TabCountVelocity),
			Description: "Initial spring velocity of the badge flip",
			Section:     SectionAnimation,
		},
	}
}

func (*SchemaProvider) getThemeKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "themes.bar.<name>.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Bar theme overrides (tint, text, button_tint, background, highlight)",
			Section:     SectionThemes,
		},
		{
			Key:         "themes.field.<name>.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Location field theme overrides; highlight is derived from tint when absent",
			Section:     SectionThemes,
		},
	}
}
