// Package matcher reconciles free-text ingredient names extracted from
// supplier invoices with a user's existing inventory. It is the public face
// of the engine: construct a Service, hand MatchOne or MatchMany an
// inventory snapshot, and apply the returned decisions in the surrounding
// inventory layer.
package matcher

import (
	"github.com/stocchef/matcher/config"
	"github.com/stocchef/matcher/internal/domain"
	"github.com/stocchef/matcher/internal/usecase"
)

// Domain types consumed and produced by the engine.
type (
	InventoryItem      = domain.InventoryItem
	ExtractedCandidate = domain.ExtractedCandidate
	MatchCandidate     = domain.MatchCandidate
	MatchSelection     = domain.MatchSelection
	MatchResult        = domain.MatchResult
)

// MatchConfig holds the matcher's decision thresholds. Zero values fall back
// to the tuned production defaults.
type MatchConfig = usecase.MatchConfig

// Service matches extracted candidates against inventory snapshots. It is
// stateless apart from its configuration and safe for concurrent use.
type Service = usecase.MatcherService

// New creates a matcher service, filling in defaults for any zero or
// negative configuration value.
func New(cfg MatchConfig) *Service {
	return usecase.NewMatcherService(cfg)
}

// NewFromConfig creates a matcher service from a loaded configuration
// (see config.Load). A nil config yields the defaults.
func NewFromConfig(cfg *config.Config) *Service {
	if cfg == nil {
		return usecase.NewMatcherService(usecase.MatchConfig{})
	}
	return usecase.NewMatcherService(usecase.MatchConfig{
		Threshold:           cfg.Matching.Threshold,
		AutoAcceptThreshold: cfg.Matching.AutoAcceptThreshold,
		NearTieGap:          cfg.Matching.NearTieGap,
		MaxAlternatives:     cfg.Matching.MaxAlternatives,
		EnableDebugLogging:  cfg.Matching.EnableDebugLogging,
	})
}
