// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	service "github.com/swashington/snas/internal/app"
)

// PortfolioStatistics mirrors the aggregate counts shape.
type PortfolioStatistics = service.Statistics

// StatisticsProvider defines the interface for portfolio statistics.
type StatisticsProvider interface {
	Statistics(ctx context.Context) (PortfolioStatistics, error)
}

// StatisticsHandler handles portfolio statistics requests.
type StatisticsHandler struct {
	deps StatisticsProvider
}

// NewStatisticsHandler creates a new statistics handler.
func NewStatisticsHandler(deps StatisticsProvider) *StatisticsHandler {
	return &StatisticsHandler{deps: deps}
}

type statisticsResponse struct {
	Success    bool                `json:"success"`
	Statistics PortfolioStatistics `json:"statistics"`
}

// HandleStatistics handles GET /api/v1/statistics requests.
func (h *StatisticsHandler) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	const op = "api.statistics"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	stats, err := h.deps.Statistics(r.Context())
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, statisticsResponse{Success: true, Statistics: stats})
}
