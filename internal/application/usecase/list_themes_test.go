package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/urlbar/internal/domain/entity"
)

type staticThemes map[entity.ThemeName]entity.Theme

func (s staticThemes) Theme(name entity.ThemeName) (entity.Theme, bool) {
	t, ok := s[name]
	return t, ok
}

func (s staticThemes) Names() []entity.ThemeName {
	names := make([]entity.ThemeName, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	return names
}

func TestListThemesUseCase_Execute(t *testing.T) {
	bar := staticThemes{
		"private": {Name: "private", BackgroundColor: "#20123a"},
		"normal":  {Name: "normal", BackgroundColor: "#f9f9fb"},
		"sepia":   {Name: "sepia", BackgroundColor: "#f4ecd8"},
	}
	field := staticThemes{
		"normal":  {Name: "normal", BackgroundColor: "#f0f0f4"},
		"private": {Name: "private", BackgroundColor: "#42414d"},
	}

	got := NewListThemesUseCase(bar, field).Execute(context.Background())

	require.Len(t, got, 3)
	assert.Equal(t, entity.ThemeName("normal"), got[0].Name)
	assert.True(t, got[0].HasField)
	assert.Equal(t, "#f0f0f4", got[0].Field.BackgroundColor)
	assert.Equal(t, entity.ThemeName("sepia"), got[2].Name)
	assert.False(t, got[2].HasField)
}
