package scoring

import (
	"math"

	"github.com/vocascope/vocascope/pkg/vocab"
)

// AdoptionConvergence measures real-world instantiation: reuse by
// other vocabularies and occurrence of the vocabulary's terms across
// indexed datasets.
type AdoptionConvergence struct {
	FacetWeight float64
	// OccurrenceScale divides raw dataset occurrences before the log
	// term; occurrence counts run orders of magnitude hotter than
	// reuse counts.
	OccurrenceScale float64
}

func (f *AdoptionConvergence) Key() string     { return "adoption_convergence" }
func (f *AdoptionConvergence) Name() string    { return "Adoption convergence" }
func (f *AdoptionConvergence) Weight() float64 { return f.FacetWeight }

func (f *AdoptionConvergence) Convergence(a vocab.AdoptionMetrics, _ vocab.DesignMetrics) float64 {
	scale := f.OccurrenceScale
	if scale <= 0 {
		scale = DefaultOccurrenceScale
	}

	reusedByVocabs := vocab.ParseCount(a.ReusedByVocabularies)
	reusedByDatasets := vocab.ParseCount(a.ReusedByDatasets)
	occurrences := vocab.ParseCount(a.OccurrencesInDatasets)

	return math.Log1p(float64(reusedByVocabs)) +
		math.Log1p(float64(reusedByDatasets)) +
		math.Log1p(float64(occurrences)/scale)
}
