// Package component provides the headless address bar and its sub-views.
package component

import (
	"github.com/bnema/urlbar/internal/application/port"
	"github.com/bnema/urlbar/internal/domain/entity"
)

// View holds the visual attributes every sub-view shares. Rotation is the
// Y-axis rotation in degrees used by the badge flip.
type View struct {
	Hidden   bool
	Alpha    float64
	Rotation float64
}

func newView() View {
	return View{Alpha: 1}
}

// Visible reports whether the view is shown and not fully transparent.
func (v View) Visible() bool {
	return !v.Hidden && v.Alpha > 0
}

// resetTransform restores identity rotation and full opacity.
func (v *View) resetTransform() {
	v.Rotation = 0
	v.Alpha = 1
}

// Button is a tintable toolbar button.
type Button struct {
	View
	Action   port.ToolbarAction
	Enabled  bool
	Selected bool
	Tint     string
}

func newButton(action port.ToolbarAction) *Button {
	return &Button{View: newView(), Action: action, Enabled: true}
}

// ApplyTheme tints the button.
func (b *Button) ApplyTheme(t entity.Theme) {
	b.Tint = t.ButtonTintColor
}
