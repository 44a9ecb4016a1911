package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/ui/component"
)

const (
	minBarWidth     = 30
	progressFull    = "━"
	progressPending = "─"
)

// AddressBarRenderer draws an address bar snapshot with the colors of its
// applied theme.
type AddressBarRenderer struct {
	theme *Theme
}

// NewAddressBarRenderer creates a renderer; theme styles the chrome around
// the bar.
func NewAddressBarRenderer(theme *Theme) *AddressBarRenderer {
	return &AddressBarRenderer{theme: theme}
}

// Render returns the bar for width terminal columns: one row for the bar,
// one for the progress line.
func (r *AddressBarRenderer) Render(s component.AddressBarState, width int) string {
	return r.RenderAt(s, width, 1)
}

// RenderAt renders the bar motion of the way through its running
// animations, 0 being their start and 1 the settled state.
func (r *AddressBarRenderer) RenderAt(s component.AddressBarState, width int, motion float64) string {
	if width < minBarWidth {
		width = minBarWidth
	}

	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.TextColor)).
		Background(lipgloss.Color(s.BackgroundColor))
	tint := base.Foreground(lipgloss.Color(s.TintColor))
	buttons := base.Foreground(lipgloss.Color(s.ButtonTintColor))

	var left, right []string
	if s.Mode == entity.ModeSearch {
		left = append(left, tint.Render(IconSearch), r.renderField(s, base, tint))
		if s.CancelVisible {
			right = append(right, tint.Bold(true).Render("Cancel"))
		}
	} else {
		if s.ReaderMode != entity.ReaderModeUnavailable {
			style := buttons
			if s.ReaderMode == entity.ReaderModeActive {
				style = tint
			}
			left = append(left, style.Render(IconBook))
		}
		left = append(left, base.Render(s.LocationText))
		right = append(right, r.renderActions(s, buttons)...)
	}
	right = append(right, r.renderBadge(s, tint, motion))

	bar := r.fill(base, strings.Join(left, base.Render(" ")), strings.Join(right, base.Render(" ")), width)
	return lipgloss.JoinVertical(lipgloss.Left, bar, r.renderProgress(s, tint, width))
}

func (*AddressBarRenderer) renderField(s component.AddressBarState, base, tint lipgloss.Style) string {
	var sb strings.Builder
	sb.WriteString(base.Render(s.FieldText))
	if s.FieldAutocompletion != "" {
		sb.WriteString(base.Reverse(true).Render(s.FieldAutocompletion))
	}
	if s.FieldFocused {
		sb.WriteString(tint.Blink(true).Render("▏"))
	}
	return sb.String()
}

func (*AddressBarRenderer) renderActions(s component.AddressBarState, buttons lipgloss.Style) []string {
	var out []string
	if s.Loading {
		out = append(out, buttons.Render(IconStop))
	} else {
		out = append(out, buttons.Render(IconReload))
	}
	if !s.ActionButtonsVisible {
		return out
	}

	nav := func(icon string, enabled bool) string {
		if enabled {
			return buttons.Render(icon)
		}
		return buttons.Faint(true).Render(icon)
	}
	out = append(out, nav(IconBack, s.CanGoBack), nav(IconForward, s.CanGoForward), buttons.Render(IconShare))
	if s.PasswordManagerShown {
		out = append(out, buttons.Render(IconKey))
	}
	return append(out, buttons.Render(IconPlus))
}

// renderBadge turns the badge over halfway through a flip: the outgoing
// count shows first, then the clone carrying the incoming one.
func (*AddressBarRenderer) renderBadge(s component.AddressBarState, tint lipgloss.Style, motion float64) string {
	badge := tint.Bold(true).Border(lipgloss.NormalBorder(), false, true)
	if !s.Flipping || s.CloneText == "" {
		return badge.Render(s.TabCountText)
	}
	if motion < 0.5 {
		return badge.Faint(true).Render(s.TabCountText + "›")
	}
	return badge.Faint(true).Render("›" + s.CloneText)
}

func (*AddressBarRenderer) fill(base lipgloss.Style, left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return base.Padding(0, 1).Render(left + base.Render(strings.Repeat(" ", gap)) + right)
}

func (*AddressBarRenderer) renderProgress(s component.AddressBarState, tint lipgloss.Style, width int) string {
	if !s.ProgressVisible {
		return strings.Repeat(" ", width)
	}
	done := int(s.Progress * float64(width))
	return tint.Render(strings.Repeat(progressFull, done)) +
		lipgloss.NewStyle().Faint(true).Render(strings.Repeat(progressPending, width-done))
}

// RenderStatus renders a one-line summary of the bar state below it.
func (r *AddressBarRenderer) RenderStatus(s component.AddressBarState, tabs int, private bool) string {
	mode := r.theme.Highlight.Render(s.Mode.String())
	parts := []string{
		"mode " + mode,
		"theme " + r.theme.Normal.Render(string(s.Theme)),
		"tabs " + r.theme.Normal.Render(entity.TabCountText(tabs)),
	}
	if private {
		parts = append(parts, lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconLock+" private"))
	}
	if s.ShowToolbar {
		parts = append(parts, r.theme.Subtle.Render("bottom toolbar"))
	}
	return r.theme.Subtle.Render(strings.Join(parts, "  •  "))
}
