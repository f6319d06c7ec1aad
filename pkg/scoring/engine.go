package scoring

import "github.com/vocascope/vocascope/pkg/vocab"

// Facet is the interface both convergence facets implement.
type Facet interface {
	// Key returns the machine-readable facet identifier.
	Key() string
	// Name returns the human-readable facet name.
	Name() string
	// Weight returns the facet's share of the composite.
	Weight() float64
	// Convergence computes the facet's raw log-sum for one vocabulary.
	Convergence(a vocab.AdoptionMetrics, d vocab.DesignMetrics) float64
}

// Engine combines facet convergences into a normalized connectivity
// score. Evaluation is deterministic and side-effect free: identical
// inputs always produce bitwise-identical scores.
type Engine struct {
	facets []Facet
}

// NewEngine creates a scoring engine with the given facets.
func NewEngine(facets ...Facet) *Engine {
	return &Engine{facets: facets}
}

var defaultEngine = NewEngine(DefaultFacets()...)

// DefaultEngine returns the shared engine computing the canonical
// connectivity formula.
func DefaultEngine() *Engine {
	return defaultEngine
}

// Evaluate scores one vocabulary, returning the normalized score with
// its full facet breakdown.
func (e *Engine) Evaluate(a vocab.AdoptionMetrics, d vocab.DesignMetrics) ScoreResult {
	var result ScoreResult

	for _, f := range e.facets {
		conv := f.Convergence(a, d)
		fr := FacetResult{
			Key:          f.Key(),
			Name:         f.Name(),
			Convergence:  conv,
			Weight:       f.Weight(),
			Contribution: f.Weight() * conv,
		}
		result.Breakdown = append(result.Breakdown, fr)
		result.Composite += fr.Contribution
	}

	score := result.Composite / Normalizer

	// Clamp to [0,1]
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	result.Score = score
	result.Band = BandFromScore(score)
	return result
}

// Score computes the normalized connectivity score for one vocabulary
// using the canonical formula.
func Score(a vocab.AdoptionMetrics, d vocab.DesignMetrics) float64 {
	return defaultEngine.Evaluate(a, d).Score
}
