package schools

import (
	"regexp"
	"strings"
)

var (
	schoolWordsRe = regexp.MustCompile(`(?i)(\b(high school|preparatory|academy|school|prep|hs)\b|h\.s\.)`)
	slugRunRe     = regexp.MustCompile(`[^a-z0-9]+`)
)

// StripSchoolWords removes institutional filler words (High School, H.S.,
// HS, Academy, School, Preparatory, Prep) and collapses whitespace, so
// "Cannon High School" and "Cannon" compare equal.
func StripSchoolWords(name string) string {
	stripped := schoolWordsRe.ReplaceAllString(name, " ")
	return strings.Join(strings.Fields(stripped), " ")
}

// Slugify derives a URL-safe key from a school name: lowercase, runs of
// non-alphanumerics become single hyphens, trimmed.
func Slugify(name string) string {
	slug := slugRunRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
