package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vocascope/vocascope/internal/history"
	"github.com/vocascope/vocascope/pkg/rank"
	"github.com/vocascope/vocascope/pkg/vocab"
)

// Service runs a ranked search and persists the outcome: the ranking
// snapshot, optionally a delta against an earlier snapshot, and an
// audit row.
type Service struct {
	pipeline   *rank.Pipeline
	storage    StorageClient
	history    *history.Service
	registryID string
}

// NewService creates a new export Service. history may be nil, in
// which case exports are stored but not audited.
func NewService(pipeline *rank.Pipeline, storage StorageClient, hist *history.Service, registryID string) *Service {
	return &Service{
		pipeline:   pipeline,
		storage:    storage,
		history:    hist,
		registryID: registryID,
	}
}

// ExportRequest describes what to export.
type ExportRequest struct {
	Term       string
	BaselineID string // prior ranking to diff against; empty skips the delta
}

// ExportResult is the stored outcome of one export.
type ExportResult struct {
	Record  *history.ExportRecord
	Ranking *vocab.Ranking
	Delta   *vocab.RankingDelta
}

// Export runs the full export pipeline for a term.
func (s *Service) Export(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	// 1. Run the ranked search.
	res, err := s.pipeline.Run(ctx, req.Term)
	if err != nil {
		return nil, fmt.Errorf("run search: %w", err)
	}

	// 2. Snapshot and store the ranking.
	ranking := vocab.NewRanking(res.Term, res.Entries)
	data, err := vocab.EncodeRanking(ranking)
	if err != nil {
		return nil, fmt.Errorf("encode ranking: %w", err)
	}
	if err := s.storage.PutRanking(ctx, s.registryID, ranking.ID, data); err != nil {
		return nil, fmt.Errorf("store ranking: %w", err)
	}

	out := &ExportResult{Ranking: ranking}

	// 3. Diff against the baseline when one is named.
	var deltaID *string
	if req.BaselineID != "" {
		baseData, err := s.storage.GetRanking(ctx, s.registryID, req.BaselineID)
		if err != nil {
			return nil, fmt.Errorf("load baseline %s: %w", req.BaselineID, err)
		}
		base, err := vocab.DecodeRanking(baseData)
		if err != nil {
			return nil, fmt.Errorf("decode baseline %s: %w", req.BaselineID, err)
		}

		delta := vocab.ComputeDelta(base, ranking)
		deltaData, err := json.Marshal(delta)
		if err != nil {
			return nil, fmt.Errorf("marshal delta: %w", err)
		}
		if err := s.storage.PutDelta(ctx, s.registryID, delta.ID, deltaData); err != nil {
			return nil, fmt.Errorf("store delta: %w", err)
		}
		out.Delta = delta
		deltaID = &delta.ID
	}

	// 4. Record the export. Artifacts are already stored; auditing is
	// skipped without a history service.
	if s.history != nil {
		rec, err := s.history.RecordExport(ctx, history.ExportRecord{
			Term:       ranking.Term,
			RankingID:  ranking.ID,
			DeltaID:    deltaID,
			Backend:    backendName(s.storage),
			EntryCount: len(ranking.Entries),
		})
		if err != nil {
			return nil, fmt.Errorf("record export: %w", err)
		}
		out.Record = rec
	}

	return out, nil
}

// LoadRanking fetches a stored ranking snapshot by ID.
func (s *Service) LoadRanking(ctx context.Context, rankingID string) (*vocab.Ranking, error) {
	data, err := s.storage.GetRanking(ctx, s.registryID, rankingID)
	if err != nil {
		return nil, fmt.Errorf("load ranking %s: %w", rankingID, err)
	}
	return vocab.DecodeRanking(data)
}

// LoadDelta fetches a stored delta by ID.
func (s *Service) LoadDelta(ctx context.Context, deltaID string) (*vocab.RankingDelta, error) {
	data, err := s.storage.GetDelta(ctx, s.registryID, deltaID)
	if err != nil {
		return nil, fmt.Errorf("load delta %s: %w", deltaID, err)
	}
	var delta vocab.RankingDelta
	if err := json.Unmarshal(data, &delta); err != nil {
		return nil, fmt.Errorf("unmarshal delta %s: %w", deltaID, err)
	}
	return &delta, nil
}
