// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/swashington/snas/internal/adapters/repository"
	"github.com/swashington/snas/internal/domain/content"
	"github.com/swashington/snas/internal/domain/scoring"
	"github.com/swashington/snas/internal/loader"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Prioritizer
	ContentSuggester
	BadgeLister
	BadgeUpserter
	Importer
	Maintainer
	StatisticsProvider
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	prioritizeHandler  *PrioritizeHandler
	contentHandler     *ContentHandler
	badgesHandler      *BadgesHandler
	importHandler      *ImportHandler
	statisticsHandler  *StatisticsHandler
	maintenanceHandler *MaintenanceHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		prioritizeHandler:  NewPrioritizeHandler(deps),
		contentHandler:     NewContentHandler(deps),
		badgesHandler:      NewBadgesHandler(deps),
		importHandler:      NewImportHandler(deps),
		statisticsHandler:  NewStatisticsHandler(deps),
		maintenanceHandler: NewMaintenanceHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/v1/prioritize-badges", MetricsMiddleware(s.prioritizeHandler.HandlePrioritize, "prioritize_badges"))
	mux.HandleFunc("/api/v1/content-suggestions", MetricsMiddleware(s.contentHandler.HandleGetSuggestions, "content_suggestions"))
	mux.HandleFunc("/api/v1/badges", MetricsMiddleware(s.badgesHandler.HandleBadges, "badges"))
	mux.HandleFunc("/api/v1/import", MetricsMiddleware(s.importHandler.HandleImport, "import"))
	mux.HandleFunc("/api/v1/export", MetricsMiddleware(s.maintenanceHandler.HandleExport, "export"))
	mux.HandleFunc("/api/v1/statistics", MetricsMiddleware(s.statisticsHandler.HandleStatistics, "statistics"))
	mux.HandleFunc("/api/v1/maintenance/backfill", MetricsMiddleware(s.maintenanceHandler.HandleBackfill, "backfill"))
	mux.HandleFunc("/api/v1/maintenance/cleanup", MetricsMiddleware(s.maintenanceHandler.HandleCleanup, "cleanup"))
}

// errorResponse is the uniform failure envelope rendered by every route.
type errorResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Timestamp  string `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := code
	if err != nil {
		msg = code + ": " + err.Error()
	}
	writeJSON(w, status, errorResponse{
		Success:    false,
		Error:      msg,
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// writeDomainError translates known sentinel errors to their HTTP shape.
// Anything unrecognized renders as a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "RECORD_NOT_FOUND", err)
	case errors.Is(err, scoring.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err)
	case errors.Is(err, content.ErrUnsupportedContentType):
		writeError(w, http.StatusBadRequest, "INVALID_CONTENT_TYPE", err)
	case errors.Is(err, loader.ErrNoRecords), errors.Is(err, loader.ErrBadCSV):
		writeError(w, http.StatusBadRequest, "INVALID_IMPORT_PAYLOAD", err)
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err)
	}
}
