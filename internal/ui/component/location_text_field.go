package component

import (
	"strings"

	"github.com/bnema/urlbar/internal/domain/entity"
)

// LocationTextField is the editable location field. It only exists while the
// address bar is in search mode.
type LocationTextField struct {
	View

	text           string
	autocompletion string
	focused        bool
	theme          entity.Theme
}

// NewLocationTextField creates an empty, unfocused field.
func NewLocationTextField() *LocationTextField {
	return &LocationTextField{View: newView()}
}

// SetText replaces the typed text and drops any inline completion.
func (f *LocationTextField) SetText(text string) {
	f.text = text
	f.autocompletion = ""
}

// Text returns the typed text without the inline completion.
func (f *LocationTextField) Text() string {
	return f.text
}

// Autocompletion returns the inline completion suffix, if any.
func (f *LocationTextField) Autocompletion() string {
	return f.autocompletion
}

// FullText returns the typed text with the completion accepted.
func (f *LocationTextField) FullText() string {
	return f.text + f.autocompletion
}

// SetAutocompleteSuggestion shows the part of suggestion that extends the
// typed text. Suggestions that do not start with the typed text clear the
// completion.
func (f *LocationTextField) SetAutocompleteSuggestion(suggestion string) {
	if f.text == "" || len(suggestion) <= len(f.text) ||
		!strings.EqualFold(suggestion[:len(f.text)], f.text) {
		f.autocompletion = ""
		return
	}
	f.autocompletion = suggestion[len(f.text):]
}

// Focus gives the field keyboard focus.
func (f *LocationTextField) Focus() {
	f.focused = true
}

// Blur releases keyboard focus.
func (f *LocationTextField) Blur() {
	f.focused = false
}

// Focused reports whether the field holds focus.
func (f *LocationTextField) Focused() bool {
	return f.focused
}

// ApplyTheme applies a text field theme.
func (f *LocationTextField) ApplyTheme(t entity.Theme) {
	f.theme = t
}

// Theme returns the applied theme.
func (f *LocationTextField) Theme() entity.Theme {
	return f.theme
}
