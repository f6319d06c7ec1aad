package scoring_test

import (
	"testing"

	"github.com/vocascope/vocascope/pkg/scoring"
	"github.com/vocascope/vocascope/pkg/vocab"
)

// stubFacet returns a fixed convergence regardless of input, for
// exercising the engine's arithmetic in isolation.
type stubFacet struct {
	key    string
	weight float64
	conv   float64
}

func (s *stubFacet) Key() string     { return s.key }
func (s *stubFacet) Name() string    { return s.key }
func (s *stubFacet) Weight() float64 { return s.weight }
func (s *stubFacet) Convergence(vocab.AdoptionMetrics, vocab.DesignMetrics) float64 {
	return s.conv
}

func TestScore_AllZeroIsExactlyZero(t *testing.T) {
	tests := []struct {
		name string
		a    vocab.AdoptionMetrics
		d    vocab.DesignMetrics
	}{
		{"defaults", vocab.DefaultAdoptionMetrics(), vocab.DesignMetrics{}},
		{"zero values", vocab.AdoptionMetrics{}, vocab.DesignMetrics{}},
		{"explicit zeros", vocab.AdoptionMetrics{ReusedByVocabularies: "0", ReusedByDatasets: "0", OccurrencesInDatasets: "0"}, vocab.DesignMetrics{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoring.Score(tt.a, tt.d); got != 0 {
				t.Errorf("Score = %v, want exactly 0", got)
			}
		})
	}
}

func TestScore_StaysWithinUnitInterval(t *testing.T) {
	tests := []struct {
		name string
		a    vocab.AdoptionMetrics
		d    vocab.DesignMetrics
	}{
		{"zero", vocab.AdoptionMetrics{}, vocab.DesignMetrics{}},
		{"modest", vocab.AdoptionMetrics{ReusedByVocabularies: "3"}, vocab.DesignMetrics{Extends: 1}},
		{"heavy adoption", vocab.AdoptionMetrics{ReusedByVocabularies: "500", ReusedByDatasets: "800", OccurrencesInDatasets: "90000000"}, vocab.DesignMetrics{}},
		{"heavy design", vocab.AdoptionMetrics{}, vocab.DesignMetrics{Extends: 100000, HasEquivalencesWith: 100000, ReliesOn: 100000, UsedBy: 100000, Specializes: 100000, Generalizes: 100000}},
		{"everything extreme", vocab.AdoptionMetrics{ReusedByVocabularies: "999999999", ReusedByDatasets: "999999999", OccurrencesInDatasets: "999999999"}, vocab.DesignMetrics{Extends: 999999, HasEquivalencesWith: 999999, ReliesOn: 999999, UsedBy: 999999, Specializes: 999999, Generalizes: 999999}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoring.Score(tt.a, tt.d)
			if got < 0 || got > 1 {
				t.Errorf("Score = %v, want within [0,1]", got)
			}
		})
	}
}

func TestScore_ClampsAtOne(t *testing.T) {
	// Six predicates at 100000 give a design convergence of
	// 6*ln(100001) ~ 69, far past the normalizer of 15.
	d := vocab.DesignMetrics{Extends: 100000, HasEquivalencesWith: 100000, ReliesOn: 100000, UsedBy: 100000, Specializes: 100000, Generalizes: 100000}
	if got := scoring.Score(vocab.AdoptionMetrics{}, d); got != 1 {
		t.Errorf("Score = %v, want clamped to 1", got)
	}
}

func TestScore_MonotonicInEveryMetric(t *testing.T) {
	baseA := vocab.AdoptionMetrics{ReusedByVocabularies: "2", ReusedByDatasets: "3", OccurrencesInDatasets: "4000"}
	baseD := vocab.DesignMetrics{Extends: 1, HasEquivalencesWith: 2, ReliesOn: 3, UsedBy: 4, Specializes: 1, Generalizes: 1}
	baseline := scoring.Score(baseA, baseD)

	bump := []struct {
		name string
		a    vocab.AdoptionMetrics
		d    vocab.DesignMetrics
	}{
		{"reusedByVocabularies", vocab.AdoptionMetrics{ReusedByVocabularies: "20", ReusedByDatasets: "3", OccurrencesInDatasets: "4000"}, baseD},
		{"reusedByDatasets", vocab.AdoptionMetrics{ReusedByVocabularies: "2", ReusedByDatasets: "30", OccurrencesInDatasets: "4000"}, baseD},
		{"occurrencesInDatasets", vocab.AdoptionMetrics{ReusedByVocabularies: "2", ReusedByDatasets: "3", OccurrencesInDatasets: "40000"}, baseD},
		{"extends", baseA, vocab.DesignMetrics{Extends: 10, HasEquivalencesWith: 2, ReliesOn: 3, UsedBy: 4, Specializes: 1, Generalizes: 1}},
		{"hasEquivalencesWith", baseA, vocab.DesignMetrics{Extends: 1, HasEquivalencesWith: 20, ReliesOn: 3, UsedBy: 4, Specializes: 1, Generalizes: 1}},
		{"reliesOn", baseA, vocab.DesignMetrics{Extends: 1, HasEquivalencesWith: 2, ReliesOn: 30, UsedBy: 4, Specializes: 1, Generalizes: 1}},
		{"usedBy", baseA, vocab.DesignMetrics{Extends: 1, HasEquivalencesWith: 2, ReliesOn: 3, UsedBy: 40, Specializes: 1, Generalizes: 1}},
		{"specializes", baseA, vocab.DesignMetrics{Extends: 1, HasEquivalencesWith: 2, ReliesOn: 3, UsedBy: 4, Specializes: 10, Generalizes: 1}},
		{"generalizes", baseA, vocab.DesignMetrics{Extends: 1, HasEquivalencesWith: 2, ReliesOn: 3, UsedBy: 4, Specializes: 1, Generalizes: 10}},
	}

	for _, tt := range bump {
		t.Run(tt.name, func(t *testing.T) {
			got := scoring.Score(tt.a, tt.d)
			if got < baseline {
				t.Errorf("raising %s lowered score: %v -> %v", tt.name, baseline, got)
			}
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	a := vocab.AdoptionMetrics{ReusedByVocabularies: "17", ReusedByDatasets: "4", OccurrencesInDatasets: "123456"}
	d := vocab.DesignMetrics{Extends: 3, HasEquivalencesWith: 1, ReliesOn: 7, UsedBy: 12, Specializes: 2, Generalizes: 5}

	first := scoring.Score(a, d)
	for i := 0; i < 100; i++ {
		if got := scoring.Score(a, d); got != first {
			t.Fatalf("run %d: Score = %v, want bitwise-identical %v", i, got, first)
		}
	}
}

func approxEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-12
}

func TestEngineEvaluate_CompositeArithmetic(t *testing.T) {
	// Encodes the canonical weighting example: design convergence 2.0
	// with adoption 1.0 composites to 1.6, design 0 with adoption 3.0
	// to 1.2.
	engineA := scoring.NewEngine(
		&stubFacet{key: "design_convergence", weight: 0.6, conv: 2.0},
		&stubFacet{key: "adoption_convergence", weight: 0.4, conv: 1.0},
	)
	engineB := scoring.NewEngine(
		&stubFacet{key: "design_convergence", weight: 0.6, conv: 0},
		&stubFacet{key: "adoption_convergence", weight: 0.4, conv: 3.0},
	)

	resultA := engineA.Evaluate(vocab.AdoptionMetrics{}, vocab.DesignMetrics{})
	resultB := engineB.Evaluate(vocab.AdoptionMetrics{}, vocab.DesignMetrics{})

	if want := 1.6 / scoring.Normalizer; !approxEqual(resultA.Score, want) {
		t.Errorf("A score = %v, want %v", resultA.Score, want)
	}
	if want := 1.2 / scoring.Normalizer; !approxEqual(resultB.Score, want) {
		t.Errorf("B score = %v, want %v", resultB.Score, want)
	}
	if resultA.Score <= resultB.Score {
		t.Errorf("A (%v) should outrank B (%v)", resultA.Score, resultB.Score)
	}

	if len(resultA.Breakdown) != 2 {
		t.Fatalf("len(Breakdown) = %d, want 2", len(resultA.Breakdown))
	}
	if got := resultA.Breakdown[0].Contribution; !approxEqual(got, 1.2) {
		t.Errorf("design contribution = %v, want 1.2", got)
	}
}

func TestBandFromScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, scoring.BandIsolated},
		{0.01, scoring.BandEmerging},
		{0.29, scoring.BandEmerging},
		{0.3, scoring.BandConnected},
		{0.59, scoring.BandConnected},
		{0.6, scoring.BandWellConnected},
		{1, scoring.BandWellConnected},
	}

	for _, tt := range tests {
		if got := scoring.BandFromScore(tt.score); got != tt.want {
			t.Errorf("BandFromScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
