package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configDir      string
	mu             sync.RWMutex
	listeners      []changeListener
	nextListener   int
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager rooted at configDir.
// An empty configDir resolves to the XDG config directory.
func NewManager(configDir string) (*Manager, error) {
	if configDir == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		configDir = dir
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("URLBAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "URLBAR_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind URLBAR_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "URLBAR_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind URLBAR_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
	}, nil
}

// Load loads the configuration from file and environment variables,
// creating a default file on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.ConfigFilePath()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}
	if config.Logging.MaxSizeMB <= 0 {
		config.Logging.MaxSizeMB = defaultLogSizeMB
	}
	config.Logging.LogDir = strings.TrimSpace(config.Logging.LogDir)

	config.AddressBar.DefaultTheme = strings.ToLower(strings.TrimSpace(config.AddressBar.DefaultTheme))
	if config.AddressBar.DefaultTheme == "" {
		config.AddressBar.DefaultTheme = defaultTheme
	}

	if config.Themes.Bar == nil {
		config.Themes.Bar = map[string]ThemeColors{}
	}
	if config.Themes.Field == nil {
		config.Themes.Field = map[string]ThemeColors{}
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg, writes it to disk and makes it current.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	m.mu.Lock()
	if err := validateConfig(cfg); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := WriteConfigOrdered(cfg, m.ConfigFilePath()); err != nil {
		m.mu.Unlock()
		return err
	}

	saved := *cfg
	m.config = &saved
	if m.watching {
		// the watcher will see our own write; keep the in-memory copy
		m.skipNextReload = true
		m.mu.Unlock()
		return nil
	}
	m.notifyLocked()
	return nil
}

// ConfigFilePath returns the path of the config file this manager reads.
func (m *Manager) ConfigFilePath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, "config.toml")
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}
	return WriteConfigOrdered(DefaultConfig(), filepath.Join(m.configDir, "config.toml"))
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setAddressBarDefaults(defaults)
	m.setAnimationDefaults(defaults)
	m.setThemeDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

func (m *Manager) setAddressBarDefaults(defaults *Config) {
	m.viper.SetDefault("address_bar.default_theme", defaults.AddressBar.DefaultTheme)
	m.viper.SetDefault("address_bar.show_toolbar", defaults.AddressBar.ShowToolbar)
	m.viper.SetDefault("address_bar.focus_delay_ms", defaults.AddressBar.FocusDelayMs)
	m.viper.SetDefault("address_bar.show_password_manager", defaults.AddressBar.ShowPasswordManager)
	m.viper.SetDefault("address_bar.search_url", defaults.AddressBar.SearchURL)
}

func (m *Manager) setAnimationDefaults(defaults *Config) {
	m.viper.SetDefault("animation.enabled", defaults.Animation.Enabled)
	m.viper.SetDefault("animation.transition_duration_ms", defaults.Animation.TransitionDurationMs)
	m.viper.SetDefault("animation.tab_count_duration_ms", defaults.Animation.TabCountDurationMs)
	m.viper.SetDefault("animation.tab_count_damping", defaults.Animation.TabCountDamping)
	m.viper.SetDefault("animation.tab_count_velocity", defaults.Animation.TabCountVelocity)
}

func (m *Manager) setThemeDefaults(defaults *Config) {
	m.viper.SetDefault("themes.bar", defaults.Themes.Bar)
	m.viper.SetDefault("themes.field", defaults.Themes.Field)
}
