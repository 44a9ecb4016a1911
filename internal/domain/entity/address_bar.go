package entity

import "strconv"

// AddressBarMode is the address bar's two-state mode.
type AddressBarMode int

const (
	// ModeDisplay shows the read-only location and the action buttons.
	ModeDisplay AddressBarMode = iota
	// ModeSearch shows the editable location field and the cancel button.
	ModeSearch
)

func (m AddressBarMode) String() string {
	switch m {
	case ModeDisplay:
		return "display"
	case ModeSearch:
		return "search"
	default:
		return "unknown"
	}
}

// ReaderModeState mirrors the page's reader mode availability.
type ReaderModeState string

const (
	ReaderModeUnavailable ReaderModeState = "unavailable"
	ReaderModeAvailable   ReaderModeState = "available"
	ReaderModeActive      ReaderModeState = "active"
)

// AccessibilityAction is a named custom action exposed on the location view.
type AccessibilityAction struct {
	Name    string
	Handler func() bool
}

// MaxTabCountDisplay is the largest count rendered as digits.
const MaxTabCountDisplay = 99

// InfinityTabCount is shown when the count exceeds MaxTabCountDisplay.
const InfinityTabCount = "∞"

// TabCountText renders a tab count the way the badge displays it.
func TabCountText(count int) string {
	if count < 0 {
		count = 0
	}
	if count > MaxTabCountDisplay {
		return InfinityTabCount
	}
	return strconv.Itoa(count)
}
