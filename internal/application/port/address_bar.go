package port

import (
	"github.com/bnema/urlbar/internal/domain/entity"
)

// ToolbarAction identifies one of the trailing action buttons.
type ToolbarAction string

const (
	ToolbarActionBack            ToolbarAction = "back"
	ToolbarActionForward         ToolbarAction = "forward"
	ToolbarActionShare           ToolbarAction = "share"
	ToolbarActionPasswordManager ToolbarAction = "password_manager"
	ToolbarActionAddTab          ToolbarAction = "add_tab"
)

// AddressBarDelegate is implemented by the host screen that owns the
// address bar. All callbacks run on the UI loop.
type AddressBarDelegate interface {
	DidPressTabs()
	DidPressReaderMode()
	// DidLongPressReaderMode returns true when the long press was consumed.
	DidLongPressReaderMode() bool
	DidPressStop()
	DidPressReload()
	DidPressAction(action ToolbarAction)
	DidEnterSearchMode()
	DidLeaveSearchMode(cancelled bool)
	DidLongPressLocation()
	DidPressScrollToTop()
	DidEnterText(text string)
	DidSubmitText(text string)

	// DisplayText formats a location for the read-only location view.
	DisplayText(url string) string
	// AccessibilityActions returns the contextual actions for the location view.
	AccessibilityActions() []entity.AccessibilityAction
}

// TabCountProvider exposes the authoritative number of tabs shown by the badge.
type TabCountProvider interface {
	TabCount() int
}

// TabCountFunc adapts a function to TabCountProvider.
type TabCountFunc func() int

// TabCount calls f().
func (f TabCountFunc) TabCount() int {
	return f()
}

// ThemeProvider is a read-only theme registry keyed by theme name.
type ThemeProvider interface {
	Theme(name entity.ThemeName) (entity.Theme, bool)
	Names() []entity.ThemeName
}
