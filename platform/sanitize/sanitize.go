// Package sanitize provides text sanitization for user supplied fields.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

// Only '<' followed by a letter, '/' or '!' opens a tag, so "<5M" survives.
var htmlTagRegex = regexp.MustCompile(`<[a-zA-Z/!][^>]*>`)

// StripHTML removes all HTML tags from a string, making it safe for text-only display.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = strings.ReplaceAll(result, "&lt;", "<")
	result = strings.ReplaceAll(result, "&gt;", ">")
	result = strings.ReplaceAll(result, "&amp;", "&")
	result = strings.ReplaceAll(result, "&quot;", "\"")
	result = strings.ReplaceAll(result, "&#39;", "'")
	// Re-strip after entity decode to catch encoded tags
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// StripControl drops control characters except newline and tab, and the
// UTF-8 byte order mark spreadsheets like to prepend.
func StripControl(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r == '\uFEFF' {
			continue
		}
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Text sanitizes a free-text field for storage: control characters and
// HTML are removed and surrounding whitespace trimmed.
func Text(s string) string {
	return StripHTML(StripControl(s))
}

// Truncate cuts s to at most maxRunes runes.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}
