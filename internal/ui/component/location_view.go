package component

import "github.com/bnema/urlbar/internal/domain/entity"

// LocationView is the read-only location shown in display mode. It hosts the
// reader mode button.
type LocationView struct {
	View

	text       string
	readerMode entity.ReaderModeState
	reader     *Button
	theme      entity.Theme
}

// NewLocationView creates an empty location view.
func NewLocationView() *LocationView {
	reader := newButton("reader_mode")
	reader.Hidden = true
	return &LocationView{
		View:       newView(),
		readerMode: entity.ReaderModeUnavailable,
		reader:     reader,
	}
}

// SetText sets the formatted location.
func (lv *LocationView) SetText(text string) {
	lv.text = text
}

// Text returns the formatted location.
func (lv *LocationView) Text() string {
	return lv.text
}

// SetReaderModeState updates the reader mode button.
func (lv *LocationView) SetReaderModeState(state entity.ReaderModeState) {
	lv.readerMode = state
	lv.reader.Hidden = state == entity.ReaderModeUnavailable
	lv.reader.Selected = state == entity.ReaderModeActive
}

// ReaderModeState returns the current reader mode state.
func (lv *LocationView) ReaderModeState() entity.ReaderModeState {
	return lv.readerMode
}

// ApplyTheme applies a bar theme to the location and its reader button.
func (lv *LocationView) ApplyTheme(t entity.Theme) {
	lv.theme = t
	lv.reader.ApplyTheme(t)
}

// Theme returns the applied theme.
func (lv *LocationView) Theme() entity.Theme {
	return lv.theme
}
