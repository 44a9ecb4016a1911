package config

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultLogMaxAge = 7
	defaultLogSizeMB = 10
	defaultLogBackup = 3

	defaultTheme        = "normal"
	defaultFocusDelayMs = 0
	defaultSearchURL    = "https://duckduckgo.com/?q=%s"

	defaultTransitionDurationMs = 300
	defaultTabCountDurationMs   = 300
	defaultTabCountDamping      = 0.75
	defaultTabCountVelocity     = 0.0

	// Permissions
	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the built-in configuration.
// Theme colors live in the theme package; the config only carries overrides.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			MaxAge:        defaultLogMaxAge,
			EnableFileLog: true,
			MaxSizeMB:     defaultLogSizeMB,
			MaxBackups:    defaultLogBackup,
		},
		AddressBar: AddressBarConfig{
			DefaultTheme:        defaultTheme,
			ShowToolbar:         true,
			FocusDelayMs:        defaultFocusDelayMs,
			ShowPasswordManager: true,
			SearchURL:           defaultSearchURL,
		},
		Animation: AnimationConfig{
			Enabled:              true,
			TransitionDurationMs: defaultTransitionDurationMs,
			TabCountDurationMs:   defaultTabCountDurationMs,
			TabCountDamping:      defaultTabCountDamping,
			TabCountVelocity:     defaultTabCountVelocity,
		},
		Themes: ThemesConfig{
			Bar:   map[string]ThemeColors{},
			Field: map[string]ThemeColors{},
		},
	}
}
