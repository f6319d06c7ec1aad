package scoring_test

import (
	"math"
	"testing"

	"github.com/vocascope/vocascope/pkg/scoring"
	"github.com/vocascope/vocascope/pkg/vocab"
)

func TestDesignConvergence_Basic(t *testing.T) {
	f := &scoring.DesignConvergence{FacetWeight: scoring.DesignWeight}

	d := vocab.DesignMetrics{Extends: 1, UsedBy: 2}
	got := f.Convergence(vocab.AdoptionMetrics{}, d)

	// ln(1+1) + ln(1+2) = ln(2) + ln(3)
	want := math.Log1p(1) + math.Log1p(2)
	if got != want {
		t.Errorf("Convergence = %v, want %v", got, want)
	}
}

func TestDesignConvergence_AllSixPredicatesContribute(t *testing.T) {
	f := &scoring.DesignConvergence{FacetWeight: scoring.DesignWeight}

	base := f.Convergence(vocab.AdoptionMetrics{}, vocab.DesignMetrics{})
	if base != 0 {
		t.Fatalf("zero metrics convergence = %v, want 0", base)
	}

	tests := []struct {
		name string
		d    vocab.DesignMetrics
	}{
		{"extends", vocab.DesignMetrics{Extends: 1}},
		{"hasEquivalencesWith", vocab.DesignMetrics{HasEquivalencesWith: 1}},
		{"reliesOn", vocab.DesignMetrics{ReliesOn: 1}},
		{"usedBy", vocab.DesignMetrics{UsedBy: 1}},
		{"specializes", vocab.DesignMetrics{Specializes: 1}},
		{"generalizes", vocab.DesignMetrics{Generalizes: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Convergence(vocab.AdoptionMetrics{}, tt.d)
			if got != math.Log1p(1) {
				t.Errorf("Convergence = %v, want ln(2) = %v", got, math.Log1p(1))
			}
		})
	}
}

func TestDesignConvergence_NegativeCountsReadAsZero(t *testing.T) {
	f := &scoring.DesignConvergence{FacetWeight: scoring.DesignWeight}

	d := vocab.DesignMetrics{Extends: -3, UsedBy: 1}
	got := f.Convergence(vocab.AdoptionMetrics{}, d)
	if got != math.Log1p(1) {
		t.Errorf("Convergence = %v, want ln(2) = %v", got, math.Log1p(1))
	}
}
