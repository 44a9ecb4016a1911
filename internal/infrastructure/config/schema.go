// Package config loads, validates and watches the toolbar configuration.
package config

// Config is the root configuration for the toolbar.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	AddressBar AddressBarConfig `mapstructure:"address_bar" yaml:"address_bar" toml:"address_bar" json:"address_bar"`
	Animation  AnimationConfig  `mapstructure:"animation" yaml:"animation" toml:"animation" json:"animation"`
	Themes     ThemesConfig     `mapstructure:"themes" yaml:"themes" toml:"themes" json:"themes"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// MaxAge is the number of days session logs are kept by "urlbar logs clear".
	MaxAge int `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age" jsonschema:"minimum=0"`

	// LogDir holds session log files. Empty means $XDG_STATE_HOME/urlbar/logs.
	LogDir string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	// EnableFileLog sends the preview's logs to a session file instead of
	// discarding them while the terminal is in use.
	EnableFileLog bool `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	// MaxSizeMB rotates a session log once it grows past this size.
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	// MaxBackups is the number of rotated files kept per session.
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// AddressBarConfig holds address bar behavior.
type AddressBarConfig struct {
	// DefaultTheme is applied when the bar is created.
	DefaultTheme string `mapstructure:"default_theme" yaml:"default_theme" toml:"default_theme" json:"default_theme"`
	// ShowToolbar is true when the secondary bottom toolbar carries the
	// navigation buttons; the bar then hides its own action buttons.
	ShowToolbar bool `mapstructure:"show_toolbar" yaml:"show_toolbar" toml:"show_toolbar" json:"show_toolbar"`
	// FocusDelayMs delays focusing the location field when entering search
	// with typed (not pasted) text. Zero means the next loop tick.
	FocusDelayMs int `mapstructure:"focus_delay_ms" yaml:"focus_delay_ms" toml:"focus_delay_ms" json:"focus_delay_ms" jsonschema:"minimum=0"`
	// ShowPasswordManager toggles the password-manager action button.
	ShowPasswordManager bool `mapstructure:"show_password_manager" yaml:"show_password_manager" toml:"show_password_manager" json:"show_password_manager"`
	// SearchURL is the search template for submitted text that is not a URL.
	// %s is replaced by the query.
	SearchURL string `mapstructure:"search_url" yaml:"search_url" toml:"search_url" json:"search_url"`
}

// AnimationConfig holds timing for the address bar animations.
type AnimationConfig struct {
	// Enabled set to false completes every animation immediately.
	Enabled              bool    `mapstructure:"enabled" yaml:"enabled" toml:"enabled" json:"enabled"`
	TransitionDurationMs int     `mapstructure:"transition_duration_ms" yaml:"transition_duration_ms" toml:"transition_duration_ms" json:"transition_duration_ms" jsonschema:"minimum=0"`
	TabCountDurationMs   int     `mapstructure:"tab_count_duration_ms" yaml:"tab_count_duration_ms" toml:"tab_count_duration_ms" json:"tab_count_duration_ms" jsonschema:"minimum=0"`
	TabCountDamping      float64 `mapstructure:"tab_count_damping" yaml:"tab_count_damping" toml:"tab_count_damping" json:"tab_count_damping" jsonschema:"minimum=0,maximum=1"`
	TabCountVelocity     float64 `mapstructure:"tab_count_velocity" yaml:"tab_count_velocity" toml:"tab_count_velocity" json:"tab_count_velocity"`
}

// ThemesConfig overrides theme colors by theme name. Missing fields keep
// the built-in values; unknown names add new themes.
type ThemesConfig struct {
	Bar   map[string]ThemeColors `mapstructure:"bar" yaml:"bar" toml:"bar" json:"bar"`
	Field map[string]ThemeColors `mapstructure:"field" yaml:"field" toml:"field" json:"field"`
}

// ThemeColors is a theme record as written in the config file.
type ThemeColors struct {
	Tint       string `mapstructure:"tint" yaml:"tint" toml:"tint,omitempty" json:"tint,omitempty"`
	Text       string `mapstructure:"text" yaml:"text" toml:"text,omitempty" json:"text,omitempty"`
	ButtonTint string `mapstructure:"button_tint" yaml:"button_tint" toml:"button_tint,omitempty" json:"button_tint,omitempty"`
	Background string `mapstructure:"background" yaml:"background" toml:"background,omitempty" json:"background,omitempty"`
	Highlight  string `mapstructure:"highlight" yaml:"highlight" toml:"highlight,omitempty" json:"highlight,omitempty"`
}
