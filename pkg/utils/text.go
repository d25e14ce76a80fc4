package utils

import "strings"

// SanitizeASCII replaces non-ASCII runes in captured window titles with
// spaces. Capture agents occasionally deliver broken multibyte
// sequences from native window APIs; scrubbing at ingest keeps the
// store and every downstream regex match predictable.
func SanitizeASCII(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}
