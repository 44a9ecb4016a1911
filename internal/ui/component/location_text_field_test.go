package component

import "testing"

func TestLocationTextField_SetAutocompleteSuggestion(t *testing.T) {
	tests := []struct {
		name       string
		typed      string
		suggestion string
		want       string
	}{
		{name: "extends typed text", typed: "goo", suggestion: "google.com", want: "gle.com"},
		{name: "case insensitive prefix", typed: "GOO", suggestion: "google.com", want: "gle.com"},
		{name: "not a prefix", typed: "foo", suggestion: "google.com", want: ""},
		{name: "same length", typed: "google.com", suggestion: "google.com", want: ""},
		{name: "empty typed text", typed: "", suggestion: "google.com", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewLocationTextField()
			f.SetText(tt.typed)
			f.SetAutocompleteSuggestion(tt.suggestion)
			if got := f.Autocompletion(); got != tt.want {
				t.Fatalf("Autocompletion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocationTextField_SetTextDropsCompletion(t *testing.T) {
	f := NewLocationTextField()
	f.SetText("exa")
	f.SetAutocompleteSuggestion("example.com")

	f.SetText("exb")

	if f.Autocompletion() != "" {
		t.Fatalf("completion should be cleared, got %q", f.Autocompletion())
	}
	if f.FullText() != "exb" {
		t.Fatalf("FullText() = %q", f.FullText())
	}
}
