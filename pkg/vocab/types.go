// Package vocab defines the core data model for Vocascope.
// These types are the shared vocabulary across all modules.
// Changes to this file require review from all teams.
package vocab

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// VocabularyEntry is a single hit from a registry keyword search.
// The URI is the identity; entries without one cannot be joined
// against graph metadata and keep default metrics.
type VocabularyEntry struct {
	URI         string `json:"uri"`
	Prefix      string `json:"prefix,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Homepage    string `json:"homepage,omitempty"`
}

// AdoptionMetrics holds per-vocabulary usage counts from the registry
// graph. Counts arrive as decimal strings and stay strings; "0" is the
// documented default for any absent value.
type AdoptionMetrics struct {
	ReusedByVocabularies  string `json:"reused_by_vocabularies"`
	ReusedByDatasets      string `json:"reused_by_datasets"`
	OccurrencesInDatasets string `json:"occurrences_in_datasets"`
}

// DefaultAdoptionMetrics returns the all-"0" adoption record used when
// the graph returns no row for a vocabulary.
func DefaultAdoptionMetrics() AdoptionMetrics {
	return AdoptionMetrics{
		ReusedByVocabularies:  "0",
		ReusedByDatasets:      "0",
		OccurrencesInDatasets: "0",
	}
}

// Normalize fills empty count fields with "0".
func (a AdoptionMetrics) Normalize() AdoptionMetrics {
	if a.ReusedByVocabularies == "" {
		a.ReusedByVocabularies = "0"
	}
	if a.ReusedByDatasets == "" {
		a.ReusedByDatasets = "0"
	}
	if a.OccurrencesInDatasets == "" {
		a.OccurrencesInDatasets = "0"
	}
	return a
}

// DesignMetrics holds per-vocabulary relationship counts, one per
// relationship predicate. Zero value is the documented default.
type DesignMetrics struct {
	Extends             int `json:"extends"`
	HasEquivalencesWith int `json:"has_equivalences_with"`
	ReliesOn            int `json:"relies_on"`
	UsedBy              int `json:"used_by"`
	Specializes         int `json:"specializes"`
	Generalizes         int `json:"generalizes"`
}

// RankedEntry is a search hit joined with its metrics and derived
// connectivity score. Ranked entries live for one search invocation;
// they are never persisted by the pipeline itself.
type RankedEntry struct {
	VocabularyEntry
	Adoption          AdoptionMetrics `json:"adoption"`
	Design            DesignMetrics   `json:"design"`
	ConnectivityScore float64         `json:"connectivity_score"`
}

// ParseCount parses a metric count string. Missing, unparseable, or
// negative values are 0.
func ParseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Ranking is a persisted result set from one search invocation.
type Ranking struct {
	ID          string        `json:"id"`
	Term        string        `json:"term"`
	GeneratedAt time.Time     `json:"generated_at"`
	Entries     []RankedEntry `json:"entries"`
}

// NewRanking stamps a result set with a fresh identity and timestamp.
func NewRanking(term string, entries []RankedEntry) *Ranking {
	return &Ranking{
		ID:          uuid.New().String(),
		Term:        term,
		GeneratedAt: time.Now().UTC(),
		Entries:     entries,
	}
}

// TopScore returns the highest connectivity score in the ranking, or 0
// when the ranking is empty.
func (r *Ranking) TopScore() float64 {
	top := 0.0
	for _, e := range r.Entries {
		if e.ConnectivityScore > top {
			top = e.ConnectivityScore
		}
	}
	return top
}

// URIs returns the set of non-empty entry URIs in the ranking.
func (r *Ranking) URIs() map[string]bool {
	uris := make(map[string]bool)
	for _, e := range r.Entries {
		if e.URI != "" {
			uris[e.URI] = true
		}
	}
	return uris
}
