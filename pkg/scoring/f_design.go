package scoring

import (
	"math"

	"github.com/vocascope/vocascope/pkg/vocab"
)

// DesignConvergence measures vocabulary-to-vocabulary structure: how
// much a vocabulary extends, specializes, relies on, or is used by
// others. Each relationship count contributes ln(1+count), so the
// first few relationships matter most.
type DesignConvergence struct {
	FacetWeight float64
}

func (f *DesignConvergence) Key() string     { return "design_convergence" }
func (f *DesignConvergence) Name() string    { return "Design convergence" }
func (f *DesignConvergence) Weight() float64 { return f.FacetWeight }

func (f *DesignConvergence) Convergence(_ vocab.AdoptionMetrics, d vocab.DesignMetrics) float64 {
	counts := []int{
		d.Extends,
		d.HasEquivalencesWith,
		d.ReliesOn,
		d.UsedBy,
		d.Specializes,
		d.Generalizes,
	}

	var sum float64
	for _, c := range counts {
		if c < 0 {
			c = 0
		}
		sum += math.Log1p(float64(c))
	}
	return sum
}
