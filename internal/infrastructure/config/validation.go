package config

import (
	"fmt"
	"sort"
	"strings"

	domainvalidation "github.com/bnema/urlbar/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAddressBar(config)...)
	validationErrors = append(validationErrors, validateAnimation(config)...)
	validationErrors = append(validationErrors, validateThemes("themes.bar", config.Themes.Bar)...)
	validationErrors = append(validationErrors, validateThemes("themes.field", config.Themes.Field)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateAddressBar(config *Config) []string {
	var validationErrors []string
	if strings.TrimSpace(config.AddressBar.DefaultTheme) == "" {
		validationErrors = append(validationErrors, "address_bar.default_theme must not be empty")
	}
	if config.AddressBar.FocusDelayMs < 0 {
		validationErrors = append(validationErrors, "address_bar.focus_delay_ms must be non-negative")
	}
	if config.AddressBar.SearchURL != "" && !strings.Contains(config.AddressBar.SearchURL, "%s") {
		validationErrors = append(validationErrors, "address_bar.search_url must contain %s")
	}
	return validationErrors
}

func validateAnimation(config *Config) []string {
	var validationErrors []string
	if config.Animation.TransitionDurationMs < 0 {
		validationErrors = append(validationErrors, "animation.transition_duration_ms must be non-negative")
	}
	if config.Animation.TabCountDurationMs < 0 {
		validationErrors = append(validationErrors, "animation.tab_count_duration_ms must be non-negative")
	}
	if config.Animation.TabCountDamping < 0 || config.Animation.TabCountDamping > 1 {
		validationErrors = append(validationErrors, "animation.tab_count_damping must be between 0 and 1")
	}
	return validationErrors
}

func validateThemes(prefix string, themes map[string]ThemeColors) []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)

	var validationErrors []string
	for _, name := range names {
		c := themes[name]
		validationErrors = append(validationErrors, domainvalidation.ValidateThemeHex(
			prefix+"."+name, c.Tint, c.Text, c.ButtonTint, c.Background, c.Highlight)...)
	}
	return validationErrors
}
