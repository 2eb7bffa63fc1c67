package util

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	duplicateCommas = regexp.MustCompile(`,\s*,`)
	boulevardAbbrev = regexp.MustCompile(`(?i)\bbd\b`)
)

// Normalize is the cache and gazetteer key of an address: trimmed and lower-cased.
func Normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// CleanAddress tidies free text before it is sent to a search provider.
func CleanAddress(address string) string {
	cleaned := strings.TrimSpace(address)
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	for duplicateCommas.MatchString(cleaned) {
		cleaned = duplicateCommas.ReplaceAllString(cleaned, ",")
	}
	cleaned = strings.Trim(cleaned, ",")
	cleaned = boulevardAbbrev.ReplaceAllString(cleaned, "boulevard")

	return strings.TrimSpace(cleaned)
}
