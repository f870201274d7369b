// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	service "github.com/swashington/snas/internal/app"
	"github.com/swashington/snas/internal/domain/model"
	"github.com/swashington/snas/internal/domain/types"
)

// scoringAlgorithm names the live prioritization formula in responses.
const scoringAlgorithm = "context_aware_veteran_focused_v1"

// BadgeView mirrors the read shape for a stored achievement.
type BadgeView = types.BadgeView

// ScoredBadge mirrors the prioritization read shape.
type ScoredBadge = types.ScoredBadge

// Prioritizer defines the interface for badge prioritization.
type Prioritizer interface {
	Prioritize(ctx context.Context, badges []model.Achievement, profile *model.UserProfile, sctx model.Context) (service.PrioritizeResult, error)
}

// PrioritizeHandler handles prioritization requests.
type PrioritizeHandler struct {
	deps Prioritizer
}

// NewPrioritizeHandler creates a new prioritization handler.
func NewPrioritizeHandler(deps Prioritizer) *PrioritizeHandler {
	return &PrioritizeHandler{deps: deps}
}

// prioritizeRequest mirrors the request schema for POST /api/v1/prioritize-badges.
type prioritizeRequest struct {
	Badges      []BadgeView     `json:"badges"`
	UserProfile *profilePayload `json:"user_profile"`
	Context     contextPayload  `json:"context"`
}

type profilePayload struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Headline    string `json:"headline"`
	Veteran     bool   `json:"veteran"`
}

type contextPayload struct {
	TargetAudience   string `json:"target_audience"`
	IncludeReasoning bool   `json:"include_reasoning"`
}

func (p prioritizeRequest) validate() error {
	if len(p.Badges) == 0 {
		return errors.New("missing badges")
	}
	for _, b := range p.Badges {
		if strings.TrimSpace(b.Name) == "" {
			return errors.New("badge missing name")
		}
	}
	return nil
}

type prioritizeResponse struct {
	Success          bool               `json:"success"`
	ProcessingTimeMS int64              `json:"processing_time_ms"`
	Badges           []ScoredBadge      `json:"badges"`
	Metadata         prioritizeMetadata `json:"metadata"`
}

type prioritizeMetadata struct {
	TotalBadges  int    `json:"total_badges"`
	Algorithm    string `json:"algorithm"`
	SLACompliant bool   `json:"sla_compliant"`
}

// HandlePrioritize handles POST /api/v1/prioritize-badges requests.
func (h *PrioritizeHandler) HandlePrioritize(w http.ResponseWriter, r *http.Request) {
	const op = "api.prioritize_badges"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	dec := json.NewDecoder(r.Body)
	// Unknown request keys are a caller bug, not something to ignore.
	dec.DisallowUnknownFields()

	var req prioritizeRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", WrapKind(op, ErrBadRequest, err))
		return
	}

	badges := make([]model.Achievement, len(req.Badges))
	for i, b := range req.Badges {
		badges[i] = achievementOf(b)
	}

	var profile *model.UserProfile
	if req.UserProfile != nil {
		profile = &model.UserProfile{
			UserID:      req.UserProfile.UserID,
			DisplayName: req.UserProfile.DisplayName,
			Headline:    req.UserProfile.Headline,
			Veteran:     req.UserProfile.Veteran,
		}
	}
	sctx := model.Context{
		TargetAudience:   model.Audience(req.Context.TargetAudience),
		IncludeReasoning: req.Context.IncludeReasoning,
	}

	res, err := h.deps.Prioritize(r.Context(), badges, profile, sctx)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}

	scored := make([]ScoredBadge, len(res.Badges))
	for i, s := range res.Badges {
		scored[i] = types.ScoredViewOf(s, sctx.IncludeReasoning)
	}

	writeJSON(w, http.StatusOK, prioritizeResponse{
		Success:          true,
		ProcessingTimeMS: res.ProcessingTime.Milliseconds(),
		Badges:           scored,
		Metadata: prioritizeMetadata{
			TotalBadges:  len(scored),
			Algorithm:    scoringAlgorithm,
			SLACompliant: res.SLACompliant,
		},
	})
}

// achievementOf converts the wire shape back into the domain record.
func achievementOf(v BadgeView) model.Achievement {
	return model.Achievement{
		ID:            v.ID,
		Name:          v.Name,
		Type:          model.Type(v.Type),
		Issuer:        v.Issuer,
		Description:   v.Description,
		Category:      v.Category,
		DateEarned:    v.DateEarned,
		PriorityScore: v.PriorityScore,
		Active:        v.Active,
	}
}
