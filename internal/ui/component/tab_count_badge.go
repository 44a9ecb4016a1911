package component

import "github.com/bnema/urlbar/internal/domain/entity"

// TabCountBadge shows the number of open tabs on the tabs button.
type TabCountBadge struct {
	View

	text  string
	theme entity.Theme
}

// NewTabCountBadge creates a badge showing count.
func NewTabCountBadge(count int) *TabCountBadge {
	return &TabCountBadge{View: newView(), text: entity.TabCountText(count)}
}

// Text returns the displayed count string.
func (b *TabCountBadge) Text() string {
	return b.text
}

// SetCount displays count.
func (b *TabCountBadge) SetCount(count int) {
	b.text = entity.TabCountText(count)
}

// Clone returns a badge with the same theme showing count, used to animate
// a change over the original.
func (b *TabCountBadge) Clone(count int) *TabCountBadge {
	c := NewTabCountBadge(count)
	c.theme = b.theme
	return c
}

// ApplyTheme applies a bar theme.
func (b *TabCountBadge) ApplyTheme(t entity.Theme) {
	b.theme = t
}

// Theme returns the applied theme.
func (b *TabCountBadge) Theme() entity.Theme {
	return b.theme
}
