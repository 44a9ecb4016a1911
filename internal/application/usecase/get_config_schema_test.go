package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/urlbar/internal/application/port/mocks"
	"github.com/bnema/urlbar/internal/application/usecase"
	"github.com/bnema/urlbar/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "address_bar.default_theme",
			Type:        "string",
			Default:     "normal",
			Description: "Theme applied at startup",
			Values:      []string{"normal", "private"},
			Section:     "Address Bar",
		},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     "info",
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Section:     "Logging",
		},
		{
			Key:         "animation.badge_flip_ms",
			Type:        "int",
			Default:     "350",
			Description: "Tab count flip duration",
			Range:       "0-5000",
			Section:     "Animation",
		},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns schema keys from provider", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Len(t, result.Keys, 3)
		assert.Equal(t, "address_bar.default_theme", result.Keys[0].Key)
		assert.Equal(t, "logging.level", result.Keys[1].Key)
		mock.AssertExpectationsForObjects(t, mockProvider)
	})

	t.Run("returns empty slice when no keys", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{})

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Empty(t, result.Keys)
	})

	t.Run("filters by section ignoring case", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "animation"})

		require.NoError(t, err)
		require.Len(t, result.Keys, 1)
		key := result.Keys[0]
		assert.Equal(t, "animation.badge_flip_ms", key.Key)
		assert.Equal(t, "int", key.Type)
		assert.Equal(t, "0-5000", key.Range)
		assert.Empty(t, key.Values)
	})

	t.Run("unknown section yields no keys", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "Nope"})

		require.NoError(t, err)
		assert.Empty(t, result.Keys)
	})
}
