// internal/utils/slug.go
package utils

import (
	"regexp"
	"strings"
)

var (
	slugSpecials = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugHyphens  = regexp.MustCompile(`-{2,}`)
)

// Slugify turns a title into a URL-safe slug: lowercase, special characters
// stripped, whitespace runs collapsed into single hyphens.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugSpecials.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
