package domain

import (
	"strings"
	"unicode"
)

// Slugify derives a URL slug from a title: lowercase, non-alphanumeric runs
// collapsed into single hyphens, no leading or trailing hyphen.
func Slugify(title string) string {
	var b strings.Builder
	prevHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
