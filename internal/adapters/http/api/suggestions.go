// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/swashington/snas/internal/domain/content"
	"github.com/swashington/snas/internal/domain/model"
)

// ContentSuggester defines the interface for content generation.
type ContentSuggester interface {
	SuggestContent(ctx context.Context, badgeID string, contentType model.ContentType, audience model.Audience) (content.Suggestions, model.Achievement, error)
}

// ContentHandler handles content suggestion requests.
type ContentHandler struct {
	deps ContentSuggester
}

// NewContentHandler creates a new content suggestion handler.
func NewContentHandler(deps ContentSuggester) *ContentHandler {
	return &ContentHandler{deps: deps}
}

type suggestionsResponse struct {
	Success          bool                      `json:"success"`
	BadgeID          string                    `json:"badge_id"`
	BadgeName        string                    `json:"badge_name"`
	ContentType      string                    `json:"content_type"`
	Suggestions      []model.ContentSuggestion `json:"suggestions"`
	CacheHit         bool                      `json:"cache_hit"`
	APISource        string                    `json:"api_source"`
	ProcessingTimeMS int64                     `json:"processing_time_ms"`
	SLACompliant     bool                      `json:"sla_compliant"`
}

// HandleGetSuggestions handles GET /api/v1/content-suggestions requests.
// content_type defaults to linkedin_post when absent.
func (h *ContentHandler) HandleGetSuggestions(w http.ResponseWriter, r *http.Request) {
	const op = "api.content_suggestions"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	badgeID := strings.TrimSpace(q.Get("badge_id"))
	if badgeID == "" {
		writeError(w, http.StatusBadRequest, "MISSING_BADGE_ID", NewKind(op, ErrBadRequest))
		return
	}

	contentType := model.ContentType(q.Get("content_type"))
	if contentType == "" {
		contentType = model.ContentLinkedInPost
	}
	audience := model.Audience(q.Get("audience"))

	got, badge, err := h.deps.SuggestContent(r.Context(), badgeID, contentType, audience)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}

	writeJSON(w, http.StatusOK, suggestionsResponse{
		Success:          true,
		BadgeID:          badge.ID,
		BadgeName:        badge.Name,
		ContentType:      string(contentType),
		Suggestions:      got.Suggestions,
		CacheHit:         got.CacheHit,
		APISource:        got.APISource,
		ProcessingTimeMS: got.ProcessingTime.Milliseconds(),
		SLACompliant:     got.SLACompliant,
	})
}
