package usecase

import (
	"context"
	"sort"

	"github.com/bnema/urlbar/internal/application/port"
	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/logging"
)

// ThemeSummary pairs a bar theme with the field theme of the same name.
type ThemeSummary struct {
	Name entity.ThemeName
	Bar  entity.Theme
	// Field is zero when HasField is false.
	Field    entity.Theme
	HasField bool
}

// ListThemesUseCase lists the themes an address bar can apply.
type ListThemesUseCase struct {
	bar   port.ThemeProvider
	field port.ThemeProvider
}

// NewListThemesUseCase creates a theme listing use case.
func NewListThemesUseCase(bar, field port.ThemeProvider) *ListThemesUseCase {
	return &ListThemesUseCase{bar: bar, field: field}
}

// Execute returns every bar theme sorted by name. Only themes present in
// both registries can be applied.
func (uc *ListThemesUseCase) Execute(ctx context.Context) []ThemeSummary {
	names := uc.bar.Names()
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	out := make([]ThemeSummary, 0, len(names))
	for _, name := range names {
		bar, ok := uc.bar.Theme(name)
		if !ok {
			continue
		}
		s := ThemeSummary{Name: name, Bar: bar}
		s.Field, s.HasField = uc.field.Theme(name)
		out = append(out, s)
	}

	logging.FromContext(ctx).Debug().Int("themes", len(out)).Msg("themes listed")
	return out
}
