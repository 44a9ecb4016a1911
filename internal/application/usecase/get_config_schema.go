package usecase

import (
	"context"
	"strings"

	"github.com/bnema/urlbar/internal/application/port"
	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/logging"
)

// GetConfigSchemaUseCase retrieves configuration schema information.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput contains input parameters for schema retrieval.
type GetConfigSchemaInput struct {
	// Section keeps only keys of that section (case-insensitive). Empty keeps all.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
}

// Execute retrieves the configuration keys with their metadata.
func (uc *GetConfigSchemaUseCase) Execute(ctx context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	keys := uc.provider.GetSchema()
	if input.Section == "" {
		return &GetConfigSchemaOutput{Keys: keys}, nil
	}

	filtered := make([]entity.ConfigKeyInfo, 0, len(keys))
	for _, k := range keys {
		if strings.EqualFold(k.Section, input.Section) {
			filtered = append(filtered, k)
		}
	}
	logging.FromContext(ctx).Debug().
		Str("section", input.Section).
		Int("keys", len(filtered)).
		Msg("config schema filtered")

	return &GetConfigSchemaOutput{Keys: filtered}, nil
}
