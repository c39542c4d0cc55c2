package domain

// InventoryItem is an existing ingredient record the user already tracks.
// The matcher only ever reads a snapshot of these; creation and mutation
// belong to the surrounding inventory layer.
type InventoryItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ExtractedCandidate is one line item pulled from a supplier invoice by the
// upstream extraction step. The name is free text and never guaranteed clean.
type ExtractedCandidate struct {
	Name         string   `json:"name"`
	Quantity     float64  `json:"quantity"`
	Unit         string   `json:"unit"`
	PricePerUnit *float64 `json:"pricePerUnit,omitempty"`
}

// MatchCandidate pairs one inventory item with a confidence score in [0,1]
// for a single extracted candidate.
type MatchCandidate struct {
	Item       InventoryItem `json:"item"`
	Confidence float64       `json:"confidence"`
}

// MatchSelection is the result of matching one candidate name against an
// inventory snapshot. Matches holds the retained items sorted by descending
// confidence (inventory order breaks ties), best first.
type MatchSelection struct {
	Matches           []MatchCandidate `json:"matches"`
	BestMatch         *MatchCandidate  `json:"bestMatch,omitempty"`
	Confidence        float64          `json:"confidence"`
	NeedsConfirmation bool             `json:"needsConfirmation"`
}

// MatchResult is the per-line-item decision record produced by MatchMany.
// Exactly one of MatchedItem != nil and IsNewIngredient holds.
type MatchResult struct {
	ExtractedName      string           `json:"extractedName"`
	Quantity           float64          `json:"quantity"`
	Unit               string           `json:"unit"`
	PricePerUnit       *float64         `json:"pricePerUnit,omitempty"`
	MatchedItem        *InventoryItem   `json:"matchedItem,omitempty"`
	AlternativeMatches []MatchCandidate `json:"alternativeMatches,omitempty"`
	Confidence         float64          `json:"confidence"`
	NeedsConfirmation  bool             `json:"needsConfirmation"`
	IsNewIngredient    bool             `json:"isNewIngredient"`
}
