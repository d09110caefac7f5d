// Package normalize provides the deterministic text cleanup shared by both
// classifiers.
package normalize

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// Clean lowercases text, strips every character outside [a-z0-9\s], collapses
// whitespace runs to a single space, and trims. Empty input returns "".
func Clean(text string) string {
	if text == "" {
		return ""
	}

	cleaned := strings.ToLower(text)
	cleaned = nonAlphanumeric.ReplaceAllString(cleaned, "")
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// IsBlank reports whether text is empty or whitespace-only.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
