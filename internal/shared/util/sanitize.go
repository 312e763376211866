package util

import (
	"strings"
	"unicode"
)

// SanitizeKeyPart makes name safe to embed in a flat storage key. Path
// separators, traversal sequences and whitespace become underscores.
func SanitizeKeyPart(name string) string {
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "..", "_")
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsSpace(r) || unicode.IsControl(r):
			return '_'
		default:
			return r
		}
	}, s)
	if s == "" {
		return "_"
	}
	return s
}
