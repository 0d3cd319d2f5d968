package utils

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe slug from a title: lowercase, runs of anything
// non-alphanumeric collapse to single hyphens. The transform is deterministic
// so the same title always maps to the same slug.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
