package url

import (
	"net/url"
	"strings"
)

// BuildSearchURL resolves submitted address bar text: URL-like input is
// normalized, anything else is substituted into searchTemplate's %s.
//
// Examples:
//
//	"example.com"    → "https://example.com"
//	"golang weak"    → "https://duckduckgo.com/?q=golang+weak"
func BuildSearchURL(input, searchTemplate string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if LooksLikeURL(input) {
		return Normalize(input)
	}

	if searchTemplate != "" {
		return strings.Replace(searchTemplate, "%s", url.QueryEscape(input), 1)
	}

	return input
}
