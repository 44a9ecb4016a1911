package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// EncodeTOML renders cfg as TOML. Struct fields keep definition order and
// go-toml sorts map keys, so output is deterministic.
func EncodeTOML(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteConfigOrdered writes the configuration to path.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := EncodeTOML(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
