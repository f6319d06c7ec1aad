package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/vocascope/vocascope/internal/export"
	"github.com/vocascope/vocascope/internal/history"
)

type createExportRequest struct {
	Term       string `json:"term"`
	BaselineID string `json:"baseline_id"`
}

type exportRecordResponse struct {
	ID         string `json:"id"`
	Term       string `json:"term"`
	RankingID  string `json:"ranking_id"`
	DeltaID    string `json:"delta_id,omitempty"`
	Backend    string `json:"backend"`
	EntryCount int    `json:"entry_count"`
	CreatedAt  string `json:"created_at"`
}

func exportRecordToResponse(rec *history.ExportRecord) exportRecordResponse {
	resp := exportRecordResponse{
		ID:         rec.ID,
		Term:       rec.Term,
		RankingID:  rec.RankingID,
		Backend:    rec.Backend,
		EntryCount: rec.EntryCount,
		CreatedAt:  rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if rec.DeltaID != nil {
		resp.DeltaID = *rec.DeltaID
	}
	return resp
}

func (h *Handler) handleCreateExport(w http.ResponseWriter, r *http.Request) {
	if h.exportSvc == nil {
		writeError(w, http.StatusServiceUnavailable, "exports unavailable")
		return
	}

	var req createExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Term == "" {
		writeError(w, http.StatusBadRequest, "term is required")
		return
	}

	result, err := h.exportSvc.Export(r.Context(), export.ExportRequest{
		Term:       req.Term,
		BaselineID: req.BaselineID,
	})
	if err != nil {
		log.Printf("export %q: %v", req.Term, err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	// Fresh artifacts are the likeliest next read.
	h.cache.Put(result.Ranking.ID, result.Ranking)

	resp := map[string]any{
		"ranking_id":  result.Ranking.ID,
		"term":        result.Ranking.Term,
		"entry_count": len(result.Ranking.Entries),
	}
	if result.Delta != nil {
		resp["delta_id"] = result.Delta.ID
		resp["delta"] = result.Delta
	}
	if result.Record != nil {
		resp["record"] = exportRecordToResponse(result.Record)
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleListExports(w http.ResponseWriter, r *http.Request) {
	if h.historySvc == nil {
		writeError(w, http.StatusServiceUnavailable, "history unavailable")
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

	records, err := h.historySvc.ListExports(r.Context(), limit)
	if err != nil {
		log.Printf("list exports: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list exports")
		return
	}

	result := make([]exportRecordResponse, 0, len(records))
	for i := range records {
		result = append(result, exportRecordToResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGetExport(w http.ResponseWriter, r *http.Request) {
	if h.historySvc == nil {
		writeError(w, http.StatusServiceUnavailable, "history unavailable")
		return
	}

	rec, err := h.historySvc.GetExport(r.Context(), r.PathValue("exportID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "export not found")
		return
	}
	writeJSON(w, http.StatusOK, exportRecordToResponse(rec))
}

func (h *Handler) handleGetRanking(w http.ResponseWriter, r *http.Request) {
	if h.exportSvc == nil {
		writeError(w, http.StatusServiceUnavailable, "exports unavailable")
		return
	}

	rankingID := r.PathValue("rankingID")
	if ranking := h.cache.Get(rankingID); ranking != nil {
		writeJSON(w, http.StatusOK, ranking)
		return
	}

	ranking, err := h.exportSvc.LoadRanking(r.Context(), rankingID)
	if err != nil {
		writeError(w, http.StatusNotFound, "ranking not found")
		return
	}
	h.cache.Put(rankingID, ranking)
	writeJSON(w, http.StatusOK, ranking)
}
