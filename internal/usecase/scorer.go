package usecase

// The cascade scores and blend weights below are tuned heuristics carried
// over from production behavior. Retune here, not inline.
const (
	exactMatchScore   = 1.0
	synonymMatchScore = 0.95

	// A containment result above this is returned directly instead of
	// being blended with the fuzzy metrics.
	containmentShortCircuit = 0.85

	editHeavyEditWeight    = 0.6
	editHeavyOverlapWeight = 0.4

	overlapHeavyOverlapWeight = 0.7
	overlapHeavyEditWeight    = 0.3
)

// scoreNames computes the confidence in [0,1] that two ingredient names refer
// to the same product. Evaluated as a precision cascade: exact normalized
// match, then synonym-group match, then strong containment, then the best of
// two edit/word-overlap blends with containment as a floor.
//
// An empty name (or one that normalizes to empty) scores 0 against
// everything, including another empty name.
func scoreNames(candidateName, inventoryName string) float64 {
	a := normalizeName(candidateName)
	b := normalizeName(inventoryName)

	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return exactMatchScore
	}

	if synonymSetsIntersect(synonymsOf(a), synonymsOf(b)) {
		return synonymMatchScore
	}

	contain := containment(a, b)
	if contain > containmentShortCircuit {
		return contain
	}

	edit := editSimilarity(a, b)
	overlap := wordOverlap(a, b)

	score := edit*editHeavyEditWeight + overlap*editHeavyOverlapWeight
	if alt := overlap*overlapHeavyOverlapWeight + edit*overlapHeavyEditWeight; alt > score {
		score = alt
	}
	if contain > score {
		score = contain
	}
	return score
}
