package utils

import (
	"regexp"
	"strings"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// Slugify lowercases a name and collapses whitespace runs into hyphens.
func Slugify(name string) string {
	return whitespacePattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
