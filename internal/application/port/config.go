package port

import "github.com/bnema/urlbar/internal/domain/entity"

// ConfigSchemaProvider lists every config key the application reads.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKeyInfo
}

// MigrationResult is the outcome of comparing a config file with the defaults.
type MigrationResult struct {
	// MissingKeys are default keys absent from ConfigFile.
	MissingKeys []string
	ConfigFile  string
}

// KeyInfo is the display form of one config key.
type KeyInfo struct {
	Key          string
	Type         string
	DefaultValue string
}

// ConfigMigrator brings an existing config file up to date with the defaults.
type ConfigMigrator interface {
	// CheckMigration returns nil, nil when there is no file or nothing is missing.
	CheckMigration() (*MigrationResult, error)
	// Migrate writes the missing keys and returns them.
	Migrate() ([]string, error)
	GetKeyInfo(key string) KeyInfo
}
