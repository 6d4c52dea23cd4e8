package slug

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Make derives a URL-safe slug from a title: lower-cased, with every run of
// non-alphanumeric characters collapsed to a single hyphen. Trailing
// punctuation leaves a trailing hyphen; callers rely on the exact shape for
// URL stability, so this is intentionally not trimmed.
func Make(title string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
}
