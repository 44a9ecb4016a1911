package url

import "testing"

func TestBuildSearchURL(t *testing.T) {
	const ddg = "https://duckduckgo.com/?q=%s"

	tests := []struct {
		name     string
		input    string
		template string
		want     string
	}{
		{name: "empty", input: "  ", template: ddg, want: ""},
		{name: "domain is normalized", input: "example.com", template: ddg, want: "https://example.com"},
		{name: "full url kept", input: "http://x", template: ddg, want: "http://x"},
		{name: "query is escaped", input: "golang weak pointers", template: ddg, want: "https://duckduckgo.com/?q=golang+weak+pointers"},
		{name: "no template", input: "plain query", template: "", want: "plain query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildSearchURL(tt.input, tt.template); got != tt.want {
				t.Errorf("BuildSearchURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
