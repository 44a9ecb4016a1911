package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/urlbar/internal/application/port"
	"github.com/bnema/urlbar/internal/logging"
)

// CheckConfigMigrationInput holds the input for checking config migration.
type CheckConfigMigrationInput struct{}

// CheckConfigMigrationOutput holds the result of the migration check.
type CheckConfigMigrationOutput struct {
	// NeedsMigration is true if there are missing keys.
	NeedsMigration bool
	// MissingKeys contains info about each missing key.
	MissingKeys []port.KeyInfo
	// ConfigFile is the path to the config file.
	ConfigFile string
}

// MigrateConfigInput holds the input for migrating config.
type MigrateConfigInput struct{}

// MigrateConfigOutput holds the result of the migration.
type MigrateConfigOutput struct {
	// AddedKeys contains the keys that were added.
	AddedKeys []string
	// ConfigFile is the path to the config file.
	ConfigFile string
}

// MigrateConfigUseCase handles config migration operations.
type MigrateConfigUseCase struct {
	migrator port.ConfigMigrator
}

// NewMigrateConfigUseCase creates a new migrate config use case.
func NewMigrateConfigUseCase(migrator port.ConfigMigrator) *MigrateConfigUseCase {
	return &MigrateConfigUseCase{migrator: migrator}
}

// Check reports which default keys the config file lacks.
func (uc *MigrateConfigUseCase) Check(ctx context.Context, _ CheckConfigMigrationInput) (*CheckConfigMigrationOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("checking config migration")

	result, err := uc.migrator.CheckMigration()
	if err != nil {
		return nil, fmt.Errorf("check migration: %w", err)
	}
	if result == nil {
		return &CheckConfigMigrationOutput{}, nil
	}

	keys := make([]port.KeyInfo, 0, len(result.MissingKeys))
	for _, key := range result.MissingKeys {
		keys = append(keys, uc.migrator.GetKeyInfo(key))
	}

	log.Debug().Int("missing", len(keys)).Msg("config migration available")
	return &CheckConfigMigrationOutput{
		NeedsMigration: len(keys) > 0,
		MissingKeys:    keys,
		ConfigFile:     result.ConfigFile,
	}, nil
}

// Execute adds the missing default keys to the config file.
func (uc *MigrateConfigUseCase) Execute(ctx context.Context, _ MigrateConfigInput) (*MigrateConfigOutput, error) {
	log := logging.FromContext(ctx)

	check, err := uc.migrator.CheckMigration()
	if err != nil {
		return nil, fmt.Errorf("check migration: %w", err)
	}
	if check == nil {
		return &MigrateConfigOutput{}, nil
	}

	added, err := uc.migrator.Migrate()
	if err != nil {
		return nil, fmt.Errorf("migrate config: %w", err)
	}

	log.Info().Int("added", len(added)).Str("file", check.ConfigFile).Msg("config migrated")
	return &MigrateConfigOutput{AddedKeys: added, ConfigFile: check.ConfigFile}, nil
}
