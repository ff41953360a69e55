package rules

import (
	"strings"
	"unicode"
)

// Normalize lower-cases and trims text for case-insensitive containment checks.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// containsPhrase reports whether the word sequence of phrase appears in
// the word sequence of s.
func containsPhrase(s, phrase string) bool {
	hay, needle := words(s), words(phrase)
	if len(needle) == 0 || len(needle) > len(hay) {
		return false
	}
	for i := 0; i+len(needle) <= len(hay); i++ {
		match := true
		for j := range needle {
			if hay[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
