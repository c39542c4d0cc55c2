package usecase

import (
	"context"
	"log"
	"sort"

	"github.com/stocchef/matcher/internal/domain"
)

// Default decision thresholds. Inclusion is deliberately looser than
// auto-accept: items in between surface as suggestions needing confirmation.
const (
	defaultThreshold           = 0.75
	defaultAutoAcceptThreshold = 0.9
	defaultNearTieGap          = 0.1
	defaultMaxAlternatives     = 3
)

// MatchConfig holds configuration for the matcher service
type MatchConfig struct {
	// Threshold is the minimum confidence for an inventory item to be
	// retained as a match at all.
	Threshold float64

	// AutoAcceptThreshold is the confidence above which a single
	// unambiguous best match needs no human confirmation.
	AutoAcceptThreshold float64

	// NearTieGap is how close a runner-up score must be to the best score
	// for the pair to count as ambiguous.
	NearTieGap float64

	// MaxAlternatives caps how many retained matches are returned,
	// best match included.
	MaxAlternatives int

	EnableDebugLogging bool
}

// MatcherService reconciles extracted invoice line items against an
// inventory snapshot. It is stateless apart from its configuration and safe
// for concurrent use as long as callers do not mutate the snapshot mid-call.
type MatcherService struct {
	threshold           float64
	autoAcceptThreshold float64
	nearTieGap          float64
	maxAlternatives     int
	enableDebugLogging  bool
}

// NewMatcherService creates a matcher service, filling in defaults for any
// zero or negative configuration value.
func NewMatcherService(config MatchConfig) *MatcherService {
	threshold := config.Threshold
	if threshold <= 0 {
		threshold = defaultThreshold
	}

	autoAccept := config.AutoAcceptThreshold
	if autoAccept <= 0 {
		autoAccept = defaultAutoAcceptThreshold
	}

	nearTieGap := config.NearTieGap
	if nearTieGap <= 0 {
		nearTieGap = defaultNearTieGap
	}

	maxAlternatives := config.MaxAlternatives
	if maxAlternatives <= 0 {
		maxAlternatives = defaultMaxAlternatives
	}

	return &MatcherService{
		threshold:           threshold,
		autoAcceptThreshold: autoAccept,
		nearTieGap:          nearTieGap,
		maxAlternatives:     maxAlternatives,
		enableDebugLogging:  config.EnableDebugLogging,
	}
}

// MatchOne scores every inventory item against the candidate name and
// decides whether the best match is auto-acceptable, needs confirmation, or
// is absent. Retained matches are sorted by descending confidence; equal
// scores keep the inventory's input order. The only error returned is the
// context's.
func (s *MatcherService) MatchOne(
	ctx context.Context,
	candidateName string,
	inventory []domain.InventoryItem,
) (*domain.MatchSelection, error) {
	if s.enableDebugLogging {
		log.Printf("[MATCH] Matching %q against %d inventory items", candidateName, len(inventory))
	}

	var retained []domain.MatchCandidate
	for _, item := range inventory {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		score := scoreNames(candidateName, item.Name)

		if s.enableDebugLogging {
			log.Printf("[MATCH] Inventory: %q | Score: %.2f", item.Name, score)
		}

		if score >= s.threshold {
			retained = append(retained, domain.MatchCandidate{Item: item, Confidence: score})
		}
	}

	// Stable sort keeps inventory input order as the tie-break rule for
	// equal scores.
	sort.SliceStable(retained, func(i, j int) bool {
		return retained[i].Confidence > retained[j].Confidence
	})

	if len(retained) > s.maxAlternatives {
		retained = retained[:s.maxAlternatives]
	}

	selection := &domain.MatchSelection{
		Matches:           retained,
		NeedsConfirmation: true,
	}

	if len(retained) == 0 {
		if s.enableDebugLogging {
			log.Printf("[MATCH] No match above %.2f for %q", s.threshold, candidateName)
		}
		return selection, nil
	}

	best := retained[0]
	selection.BestMatch = &best
	selection.Confidence = best.Confidence
	selection.NeedsConfirmation = s.needsConfirmation(retained)

	if s.enableDebugLogging {
		log.Printf("[MATCH] Best match for %q: %q (confidence: %.2f, confirm: %v)",
			candidateName, best.Item.Name, best.Confidence, selection.NeedsConfirmation)
	}

	return selection, nil
}

// needsConfirmation applies the decision policy to a non-empty retained set:
// confirm below the auto-accept threshold, and confirm on a near-tie where
// the runner-up is strictly within NearTieGap of the best score.
func (s *MatcherService) needsConfirmation(retained []domain.MatchCandidate) bool {
	best := retained[0].Confidence
	if best < s.autoAcceptThreshold {
		return true
	}
	if len(retained) > 1 && best-retained[1].Confidence < s.nearTieGap {
		return true
	}
	return false
}

// MatchMany produces one MatchResult per extracted candidate, in input
// order. Candidates are matched independently: nothing is claimed or
// excluded across lines, so duplicate invoice lines resolve to the same
// inventory item.
func (s *MatcherService) MatchMany(
	ctx context.Context,
	candidates []domain.ExtractedCandidate,
	inventory []domain.InventoryItem,
) ([]domain.MatchResult, error) {
	results := make([]domain.MatchResult, 0, len(candidates))

	for _, candidate := range candidates {
		selection, err := s.MatchOne(ctx, candidate.Name, inventory)
		if err != nil {
			return nil, err
		}

		result := domain.MatchResult{
			ExtractedName:     candidate.Name,
			Quantity:          candidate.Quantity,
			Unit:              candidate.Unit,
			PricePerUnit:      candidate.PricePerUnit,
			Confidence:        selection.Confidence,
			NeedsConfirmation: selection.NeedsConfirmation,
		}

		if selection.BestMatch != nil {
			matched := selection.BestMatch.Item
			result.MatchedItem = &matched
			result.AlternativeMatches = selection.Matches[1:]
		} else {
			result.IsNewIngredient = true
		}

		results = append(results, result)
	}

	return results, nil
}
