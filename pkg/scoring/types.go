// Package scoring implements the Vocascope connectivity scoring engine.
// It turns per-vocabulary adoption and design metrics into a normalized,
// explainable connectivity score.
package scoring

// ScoreResult is the complete output of scoring one vocabulary.
// Immutable once computed.
type ScoreResult struct {
	Score     float64       `json:"score"`     // normalized to [0,1]
	Composite float64       `json:"composite"` // weighted sum before normalization
	Band      string        `json:"band"`
	Breakdown []FacetResult `json:"breakdown"`
}

// FacetResult is the output of a single scoring facet.
type FacetResult struct {
	Key          string  `json:"key"`          // machine key: "design_convergence"
	Name         string  `json:"name"`         // human name: "Design convergence"
	Convergence  float64 `json:"convergence"`  // raw log-sum before weighting
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"` // convergence * weight
}

// Display bands for normalized scores.
const (
	BandWellConnected = "well-connected"
	BandConnected     = "connected"
	BandEmerging      = "emerging"
	BandIsolated      = "isolated"
)

// BandFromScore maps a normalized score to a display band. Bands are
// rendering sugar; ordering always uses the raw score.
func BandFromScore(score float64) string {
	switch {
	case score >= 0.6:
		return BandWellConnected
	case score >= 0.3:
		return BandConnected
	case score > 0:
		return BandEmerging
	default:
		return BandIsolated
	}
}
