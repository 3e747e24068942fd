package domain

import (
	"strings"
	"unicode"
)

// Slugify derives a URL slug from a title:
//   - lowercases letters and keeps digits
//   - turns every other run of characters into a single hyphen
//   - trims leading and trailing hyphens
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingHyphen := false
	for _, r := range strings.TrimSpace(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// NormalizeURL trims whitespace and a single trailing slash so that
// equivalent tool URLs compare equal.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasSuffix(raw, "/") && strings.Count(raw, "/") > 3 {
		raw = strings.TrimSuffix(raw, "/")
	}
	return raw
}
