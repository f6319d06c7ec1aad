package vocab

import "github.com/google/uuid"

// ScoreChange records one vocabulary whose connectivity score moved
// between two rankings.
type ScoreChange struct {
	URI    string  `json:"uri"`
	Title  string  `json:"title,omitempty"`
	Before float64 `json:"before"`
	After  float64 `json:"after"`
}

// RankingDelta is the difference between two rankings. Deltas are
// immutable once computed.
type RankingDelta struct {
	ID           string        `json:"id"`
	BeforeID     string        `json:"before_id"`
	AfterID      string        `json:"after_id"`
	Added        []RankedEntry `json:"added"`
	Removed      []RankedEntry `json:"removed"`
	ScoreChanges []ScoreChange `json:"score_changes"`
	Stats        DeltaStats    `json:"stats"`
}

// DeltaStats holds summary statistics for a ranking delta.
type DeltaStats struct {
	AddedCount   int `json:"added_count"`
	RemovedCount int `json:"removed_count"`
	ChangedCount int `json:"changed_count"`
}

// ComputeDelta computes the difference between a before and after
// ranking. Entries are diffed by URI; entries without a URI cannot be
// matched across rankings and are ignored.
func ComputeDelta(before, after *Ranking) *RankingDelta {
	delta := &RankingDelta{
		ID:       uuid.New().String(),
		BeforeID: before.ID,
		AfterID:  after.ID,
	}

	beforeByURI := make(map[string]RankedEntry, len(before.Entries))
	for _, e := range before.Entries {
		if e.URI != "" {
			beforeByURI[e.URI] = e
		}
	}
	afterByURI := make(map[string]RankedEntry, len(after.Entries))
	for _, e := range after.Entries {
		if e.URI != "" {
			afterByURI[e.URI] = e
		}
	}

	for _, e := range after.Entries {
		if e.URI == "" {
			continue
		}
		prev, exists := beforeByURI[e.URI]
		if !exists {
			delta.Added = append(delta.Added, e)
			continue
		}
		if prev.ConnectivityScore != e.ConnectivityScore {
			delta.ScoreChanges = append(delta.ScoreChanges, ScoreChange{
				URI:    e.URI,
				Title:  e.Title,
				Before: prev.ConnectivityScore,
				After:  e.ConnectivityScore,
			})
		}
	}
	for _, e := range before.Entries {
		if e.URI == "" {
			continue
		}
		if _, exists := afterByURI[e.URI]; !exists {
			delta.Removed = append(delta.Removed, e)
		}
	}

	delta.Stats = DeltaStats{
		AddedCount:   len(delta.Added),
		RemovedCount: len(delta.Removed),
		ChangedCount: len(delta.ScoreChanges),
	}

	return delta
}
