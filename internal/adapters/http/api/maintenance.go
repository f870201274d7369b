// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/swashington/snas/internal/adapters/repository"
	"github.com/swashington/snas/internal/loader"
)

// Maintainer defines the interface for portfolio maintenance operations.
type Maintainer interface {
	Backfill(ctx context.Context) (loader.BackfillResult, error)
	Cleanup(ctx context.Context) (loader.CleanupResult, error)
	ExportCSV(ctx context.Context, f repository.Filter) (string, error)
}

// MaintenanceHandler handles maintenance and export requests.
type MaintenanceHandler struct {
	deps Maintainer
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(deps Maintainer) *MaintenanceHandler {
	return &MaintenanceHandler{deps: deps}
}

type backfillResponse struct {
	Success bool `json:"success"`
	loader.BackfillResult
}

// HandleBackfill handles POST /api/v1/maintenance/backfill requests.
func (h *MaintenanceHandler) HandleBackfill(w http.ResponseWriter, r *http.Request) {
	const op = "api.backfill"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	res, err := h.deps.Backfill(r.Context())
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, backfillResponse{Success: true, BackfillResult: res})
}

type cleanupResponse struct {
	Success bool `json:"success"`
	loader.CleanupResult
}

// HandleCleanup handles POST /api/v1/maintenance/cleanup requests.
func (h *MaintenanceHandler) HandleCleanup(w http.ResponseWriter, r *http.Request) {
	const op = "api.cleanup"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	res, err := h.deps.Cleanup(r.Context())
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, cleanupResponse{Success: true, CleanupResult: res})
}

// HandleExport handles GET /api/v1/export requests, rendering the stored
// records as a CSV download.
func (h *MaintenanceHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.export"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	f := repository.Filter{Category: q.Get("category"), ActiveOnly: q.Get("active_only") == "true"}

	out, err := h.deps.ExportCSV(r.Context(), f)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="achievements.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}
