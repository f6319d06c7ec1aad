package vocab

import "testing"

func TestParseCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"zero", "0", 0},
		{"positive", "42", 42},
		{"large", "1234567", 1234567},
		{"empty", "", 0},
		{"garbage", "not-a-number", 0},
		{"float", "3.5", 0},
		{"negative", "-7", 0},
		{"leading space", " 12", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCount(tt.in); got != tt.want {
				t.Errorf("ParseCount(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestAdoptionMetricsNormalize(t *testing.T) {
	var zero AdoptionMetrics
	got := zero.Normalize()
	if got != DefaultAdoptionMetrics() {
		t.Errorf("Normalize() of zero value = %+v, want all-\"0\" defaults", got)
	}

	partial := AdoptionMetrics{ReusedByVocabularies: "5"}
	got = partial.Normalize()
	if got.ReusedByVocabularies != "5" {
		t.Errorf("ReusedByVocabularies = %q, want %q", got.ReusedByVocabularies, "5")
	}
	if got.ReusedByDatasets != "0" || got.OccurrencesInDatasets != "0" {
		t.Errorf("empty fields not defaulted: %+v", got)
	}
}

func TestRankingTopScore(t *testing.T) {
	empty := &Ranking{}
	if got := empty.TopScore(); got != 0 {
		t.Errorf("TopScore of empty ranking = %v, want 0", got)
	}

	r := &Ranking{Entries: []RankedEntry{
		{ConnectivityScore: 0.2},
		{ConnectivityScore: 0.74},
		{ConnectivityScore: 0.5},
	}}
	if got := r.TopScore(); got != 0.74 {
		t.Errorf("TopScore = %v, want 0.74", got)
	}
}
