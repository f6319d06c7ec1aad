package api

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/vocascope/vocascope/internal/history"
	"github.com/vocascope/vocascope/pkg/scoring"
	"github.com/vocascope/vocascope/pkg/vocab"
)

type searchResponse struct {
	Term     string          `json:"term"`
	Degraded bool            `json:"degraded"`
	Count    int             `json:"count"`
	Entries  []entryResponse `json:"entries"`
}

type entryResponse struct {
	Rank        int     `json:"rank"`
	URI         string  `json:"uri,omitempty"`
	Prefix      string  `json:"prefix,omitempty"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Score       float64 `json:"score"`
	Band        string  `json:"band"`
}

type searchRecordResponse struct {
	ID         string  `json:"id"`
	Term       string  `json:"term"`
	EntryCount int     `json:"entry_count"`
	TopScore   float64 `json:"top_score"`
	Degraded   bool    `json:"degraded"`
	DurationMs int     `json:"duration_ms"`
	CreatedAt  string  `json:"created_at"`
}

func entriesToResponse(entries []vocab.RankedEntry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for i, e := range entries {
		out = append(out, entryResponse{
			Rank:        i + 1,
			URI:         e.URI,
			Prefix:      e.Prefix,
			Title:       e.Title,
			Description: e.Description,
			Score:       e.ConnectivityScore,
			Band:        scoring.BandFromScore(e.ConnectivityScore),
		})
	}
	return out
}

func searchRecordToResponse(rec *history.SearchRecord) searchRecordResponse {
	return searchRecordResponse{
		ID:         rec.ID,
		Term:       rec.Term,
		EntryCount: rec.EntryCount,
		TopScore:   rec.TopScore,
		Degraded:   rec.Degraded,
		DurationMs: rec.DurationMs,
		CreatedAt:  rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	res, err := h.pipeline.Run(r.Context(), term)
	if err != nil {
		h.metrics.ObserveSearch("failed")
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	outcome := "ok"
	if res.Degraded {
		outcome = "degraded"
	}
	h.metrics.ObserveSearch(outcome)

	// Audit trail; a down database never blocks the response.
	if h.historySvc != nil {
		topScore := 0.0
		if len(res.Entries) > 0 {
			topScore = res.Entries[0].ConnectivityScore
		}
		if _, err := h.historySvc.RecordSearch(r.Context(), history.SearchRecord{
			Term:       res.Term,
			EntryCount: len(res.Entries),
			TopScore:   topScore,
			Degraded:   res.Degraded,
			DurationMs: int(res.Duration.Milliseconds()),
		}); err != nil {
			log.Printf("record search %q: %v", res.Term, err)
		}
	}

	entries := res.Entries
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Term:     res.Term,
		Degraded: res.Degraded,
		Count:    len(res.Entries),
		Entries:  entriesToResponse(entries),
	})
}

func (h *Handler) handleListSearches(w http.ResponseWriter, r *http.Request) {
	if h.historySvc == nil {
		writeError(w, http.StatusServiceUnavailable, "history unavailable")
		return
	}

	term := r.URL.Query().Get("term")
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	records, err := h.historySvc.ListSearches(r.Context(), term, limit)
	if err != nil {
		log.Printf("list searches: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list searches")
		return
	}

	result := make([]searchRecordResponse, 0, len(records))
	for i := range records {
		result = append(result, searchRecordToResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGetSearch(w http.ResponseWriter, r *http.Request) {
	if h.historySvc == nil {
		writeError(w, http.StatusServiceUnavailable, "history unavailable")
		return
	}

	rec, err := h.historySvc.GetSearch(r.Context(), r.PathValue("searchID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "search not found")
		return
	}
	writeJSON(w, http.StatusOK, searchRecordToResponse(rec))
}
