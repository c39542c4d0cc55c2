package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Package-level compiled regex patterns for performance
var (
	// Matches percentage tokens baked into extracted names (e.g. "45%", "3.5%")
	percentTokenRegex = regexp.MustCompile(`\d+(?:[.,]\d+)?%`)

	// Matches quantity tokens left over from extraction (e.g. "500g", "1.5 kg", "2 buc")
	quantityTokenRegex = regexp.MustCompile(`\b\d+(?:[.,]\d+)?\s*(?:kg|g|ml|l|buc)\b`)

	// Everything outside the normalized alphabet
	nonAlphanumericSpaceRegex = regexp.MustCompile(`[^a-z0-9 ]`)

	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

// stripDiacritics decomposes accented characters and drops the combining marks
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// romanianReplacer covers the Romanian letter set explicitly, including the
// legacy cedilla codepoints (U+015F, U+0163) that some sources emit instead
// of the comma-below forms.
var romanianReplacer = strings.NewReplacer(
	"ă", "a", "Ă", "a",
	"â", "a", "Â", "a",
	"î", "i", "Î", "i",
	"ș", "s", "Ș", "s",
	"ț", "t", "Ț", "t",
	"ş", "s", "Ş", "s",
	"ţ", "t", "Ţ", "t",
)

// normalizeName reduces a raw ingredient name to its canonical matching form:
// diacritics stripped, lowercased, percentage and quantity tokens removed,
// everything outside [a-z0-9 ] dropped, whitespace collapsed.
// Deterministic and locale-state free; an unusable name comes back empty.
func normalizeName(name string) string {
	if name == "" {
		return ""
	}

	result := romanianReplacer.Replace(name)
	if stripped, _, err := transform.String(stripDiacritics, result); err == nil {
		result = stripped
	}

	result = strings.ToLower(result)
	result = percentTokenRegex.ReplaceAllString(result, " ")
	result = quantityTokenRegex.ReplaceAllString(result, " ")
	result = nonAlphanumericSpaceRegex.ReplaceAllString(result, "")
	result = multiSpaceRegex.ReplaceAllString(result, " ")

	return strings.TrimSpace(result)
}
