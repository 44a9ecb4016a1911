package component

import "github.com/bnema/urlbar/internal/domain/entity"

// AddressBarState is an immutable snapshot of what the address bar shows.
type AddressBarState struct {
	Mode entity.AddressBarMode

	URL          string
	LocationText string
	ReaderMode   entity.ReaderModeState
	// LocationExpanded is true while the field covers the whole bar.
	LocationExpanded bool

	FieldPresent        bool
	FieldText           string
	FieldAutocompletion string
	FieldFocused        bool
	FieldTheme          entity.ThemeName

	TabCountText string
	// CloneText is the incoming count while a badge flip is running.
	CloneText string
	Flipping  bool

	CancelVisible        bool
	ActionButtonsVisible bool
	PasswordManagerShown bool
	CanGoBack            bool
	CanGoForward         bool
	Loading              bool
	ShowToolbar          bool
	Progress             float64
	ProgressVisible      bool

	Theme           entity.ThemeName
	TintColor       string
	TextColor       string
	ButtonTintColor string
	BackgroundColor string
}
