package entity

// ConfigKeyInfo documents one config key for `urlbar config schema --keys`.
type ConfigKeyInfo struct {
	// Key is the dotted viper path, e.g. "address_bar.default_theme".
	Key         string `json:"key"`
	Type        string `json:"type"`
	Default     string `json:"default"`
	Description string `json:"description"`
	// Env is the environment variable overriding the key.
	Env string `json:"env,omitempty"`
	// Values lists accepted values for enumerated strings.
	Values []string `json:"values,omitempty"`
	// Range is a numeric constraint such as ">=0" or "0-1".
	Range   string `json:"range,omitempty"`
	Section string `json:"section"`
}
