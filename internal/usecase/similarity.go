package usecase

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	// Tokens this short are noise (prepositions, stray letters) and are
	// dropped before word-level comparisons.
	maxNoiseTokenLen = 2

	// Minimum editSimilarity for two tokens to count as a word-overlap hit
	tokenSimilarityFloor = 0.8

	// Score for one full name being a literal substring of the other
	fullContainmentScore = 0.9

	// Token-level containment is scaled down from the full-string case
	tokenContainmentFactor = 0.8
)

// editSimilarity converts Levenshtein edit distance into a [0,1] similarity:
// (maxLen - distance) / maxLen over runes. Two empty strings are identical.
func editSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}

	distance := levenshtein.ComputeDistance(a, b)
	return float64(maxLen-distance) / float64(maxLen)
}

// significantTokens splits on whitespace and drops noise tokens.
func significantTokens(s string) []string {
	var tokens []string
	for _, token := range strings.Fields(s) {
		if len(token) <= maxNoiseTokenLen {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// wordOverlap measures how many significant words the two names share,
// allowing near-miss spellings (editSimilarity >= 0.8 per token pair).
// The hit count is taken over the smaller token set and divided by the
// larger set's size, so extra qualifier words dilute the score.
func wordOverlap(a, b string) float64 {
	tokensA := significantTokens(a)
	tokensB := significantTokens(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	shorter, longer := tokensA, tokensB
	if len(tokensB) < len(tokensA) {
		shorter, longer = tokensB, tokensA
	}

	matched := 0
	for _, st := range shorter {
		for _, lt := range longer {
			if editSimilarity(st, lt) >= tokenSimilarityFloor {
				matched++
				break
			}
		}
	}

	maxCount := len(tokensA)
	if len(tokensB) > maxCount {
		maxCount = len(tokensB)
	}
	return float64(matched) / float64(maxCount)
}

// containment scores the "more specific variant" relationship. A full-string
// substring match either direction scores 0.9 outright; otherwise the share
// of shorter-side tokens contained in (or containing) a token of the other
// side scores up to 0.8. No containment at all scores 0.
func containment(a, b string) float64 {
	if a != "" && b != "" && (strings.Contains(a, b) || strings.Contains(b, a)) {
		return fullContainmentScore
	}

	tokensA := significantTokens(a)
	tokensB := significantTokens(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	shorter, longer := tokensA, tokensB
	if len(tokensB) < len(tokensA) {
		shorter, longer = tokensB, tokensA
	}

	contained := 0
	for _, st := range shorter {
		for _, lt := range longer {
			if strings.Contains(lt, st) || strings.Contains(st, lt) {
				contained++
				break
			}
		}
	}

	if contained == 0 {
		return 0
	}
	return tokenContainmentFactor * float64(contained) / float64(len(shorter))
}
