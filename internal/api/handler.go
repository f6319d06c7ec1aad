// Package api implements the Vocascope daemon REST API.
// It serves live ranked searches plus read endpoints over the audit
// history and stored exports.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/vocascope/vocascope/internal/export"
	"github.com/vocascope/vocascope/internal/history"
	"github.com/vocascope/vocascope/pkg/rank"
)

// Handler is the top-level API handler for the Vocascope daemon.
type Handler struct {
	pipeline   *rank.Pipeline
	historySvc *history.Service
	exportSvc  *export.Service
	cache      *RankingCache
	metrics    *Metrics
}

// NewHandler creates a new API handler. historySvc and exportSvc may
// be nil; their endpoints then answer 503.
func NewHandler(pipeline *rank.Pipeline, historySvc *history.Service, exportSvc *export.Service, cache *RankingCache) *Handler {
	if cache == nil {
		cache = NewRankingCacheFromEnv()
	}
	return &Handler{
		pipeline:   pipeline,
		historySvc: historySvc,
		exportSvc:  exportSvc,
		cache:      cache,
		metrics:    NewMetrics(),
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Live search
	mux.HandleFunc("GET /v1/search", h.metrics.Instrument("/v1/search", h.handleSearch))

	// Audit reads
	mux.HandleFunc("GET /v1/searches", h.metrics.Instrument("/v1/searches", h.handleListSearches))
	mux.HandleFunc("GET /v1/searches/{searchID}", h.metrics.Instrument("/v1/searches/{searchID}", h.handleGetSearch))

	// Exports
	mux.HandleFunc("POST /v1/exports", h.metrics.Instrument("/v1/exports", h.handleCreateExport))
	mux.HandleFunc("GET /v1/exports", h.metrics.Instrument("/v1/exports", h.handleListExports))
	mux.HandleFunc("GET /v1/exports/{exportID}", h.metrics.Instrument("/v1/exports/{exportID}", h.handleGetExport))
	mux.HandleFunc("GET /v1/rankings/{rankingID}", h.metrics.Instrument("/v1/rankings/{rankingID}", h.handleGetRanking))

	// Operational
	mux.Handle("GET /metrics", h.metrics.Handler())
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
