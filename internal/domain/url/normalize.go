// Package url provides URL helpers for the address bar.
package url

import (
	"net/url"
	"strings"
)

var schemes = []string{"http://", "https://", "file://", "about:"}

func hasScheme(input string) bool {
	for _, s := range schemes {
		if strings.HasPrefix(input, s) {
			return true
		}
	}
	return false
}

// Normalize adds https:// prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	if input == "" || hasScheme(input) {
		return input
	}

	// Looks like a URL (contains . and no spaces)
	if strings.Contains(input, ".") && !strings.Contains(input, " ") {
		return "https://" + input
	}

	return input
}

// LooksLikeURL checks if the input appears to be a URL (not a search query).
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if hasScheme(input) {
		return true
	}
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}

// ExtractDomain extracts the host from a URL string, without "www.".
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}

// DisplayText formats a location for the read-only location view: web URLs
// lose their scheme, "www." and a lone trailing slash; anything else is
// shown as is.
func DisplayText(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return rawURL
	}

	text := strings.TrimPrefix(parsed.Host, "www.") + parsed.EscapedPath()
	if parsed.RawQuery != "" {
		text += "?" + parsed.RawQuery
	}
	return strings.TrimSuffix(text, "/")
}
