// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/swashington/snas/internal/adapters/repository"
	"github.com/swashington/snas/internal/domain/model"
	"github.com/swashington/snas/internal/domain/types"
)

// BadgeLister defines the interface for listing stored achievements.
type BadgeLister interface {
	ListBadges(ctx context.Context, f repository.Filter, limit, offset int) ([]model.Achievement, int, error)
}

// BadgeUpserter defines the interface for single-record writes.
type BadgeUpserter interface {
	UpsertBadge(ctx context.Context, a model.Achievement) (string, bool, error)
}

// BadgesDependencies bundles the read and write sides of /api/v1/badges.
type BadgesDependencies interface {
	BadgeLister
	BadgeUpserter
}

// BadgesHandler handles badge collection requests.
type BadgesHandler struct {
	deps BadgesDependencies
}

// NewBadgesHandler creates a new badges handler.
func NewBadgesHandler(deps BadgesDependencies) *BadgesHandler {
	return &BadgesHandler{deps: deps}
}

// HandleBadges dispatches /api/v1/badges by method.
func (h *BadgesHandler) HandleBadges(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleUpsert(w, r)
	default:
		http.NotFound(w, r)
	}
}

type listResponse struct {
	Success bool        `json:"success"`
	Badges  []BadgeView `json:"badges"`
	Total   int         `json:"total"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
}

// handleList handles GET /api/v1/badges?type&category&limit&offset.
func (h *BadgesHandler) handleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_badges"
	q := r.URL.Query()

	f := repository.Filter{Category: q.Get("category")}
	if t := q.Get("type"); t != "" {
		typ := model.Type(t)
		if !typ.Valid() {
			writeError(w, http.StatusBadRequest, "INVALID_TYPE",
				WrapKind(op, ErrBadRequest, errors.New("unknown achievement type "+strconv.Quote(t))))
			return
		}
		f.Type = typ
	}

	limit, err := queryInt(q.Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_LIMIT", WrapKind(op, ErrBadRequest, err))
		return
	}
	offset, err := queryInt(q.Get("offset"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_OFFSET", WrapKind(op, ErrBadRequest, err))
		return
	}

	records, total, err := h.deps.ListBadges(r.Context(), f, limit, offset)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}

	views := make([]BadgeView, len(records))
	for i, a := range records {
		views[i] = types.ViewOf(a)
	}
	writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Badges:  views,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

type upsertResponse struct {
	Success bool   `json:"success"`
	BadgeID string `json:"badge_id"`
	Created bool   `json:"created"`
}

// handleUpsert handles POST /api/v1/badges. Unlike the bulk import path
// this overwrites an existing (name, issuer) record.
func (h *BadgesHandler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	const op = "api.upsert_badge"

	var req BadgeView
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := validateUpsert(req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", WrapKind(op, ErrBadRequest, err))
		return
	}

	id, created, err := h.deps.UpsertBadge(r.Context(), achievementOf(req))
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, upsertResponse{Success: true, BadgeID: id, Created: created})
}

func validateUpsert(v BadgeView) error {
	switch {
	case strings.TrimSpace(v.Name) == "":
		return errors.New("missing name")
	case strings.TrimSpace(v.Issuer) == "":
		return errors.New("missing issuer")
	case !model.Type(v.Type).Valid():
		return errors.New("invalid type " + strconv.Quote(v.Type))
	}
	return nil
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New("invalid integer " + strconv.Quote(raw))
	}
	return n, nil
}
