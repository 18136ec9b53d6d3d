package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled patterns for slug generation.
var (
	htmlTagPattern  = regexp.MustCompile(`<[^>]*>`)
	nonAlnumPattern = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify derives a URL-safe anchor id from heading text: lowercase, HTML
// tags stripped, every run of characters outside [a-z0-9] collapsed to a
// single hyphen, leading and trailing hyphens trimmed.
// Pure function: the same text always yields the same slug. Slugs are not
// de-duplicated across a document.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = nonAlnumPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
