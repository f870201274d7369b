// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/swashington/snas/internal/loader"
)

// Importer defines the interface for bulk record ingestion.
type Importer interface {
	Import(ctx context.Context, records []loader.Record, opts loader.Options) (loader.Result, error)
	ImportCSV(ctx context.Context, payload io.Reader, opts loader.Options) (loader.Result, error)
}

// ImportHandler handles bulk import requests.
type ImportHandler struct {
	deps Importer
}

// NewImportHandler creates a new import handler.
func NewImportHandler(deps Importer) *ImportHandler {
	return &ImportHandler{deps: deps}
}

// importRequest mirrors the JSON request schema for POST /api/v1/import.
type importRequest struct {
	Records []loader.Record `json:"records"`
	Options loader.Options  `json:"options"`
}

type importResponse struct {
	Success bool `json:"success"`
	loader.Result
}

// HandleImport handles POST /api/v1/import requests. A text/csv body is
// parsed as a CSV payload with options taken from the query string;
// anything else is decoded as inline JSON records.
func (h *ImportHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	const op = "api.import"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var (
		res loader.Result
		err error
	)
	if strings.Contains(r.Header.Get("Content-Type"), "text/csv") {
		res, err = h.deps.ImportCSV(r.Context(), r.Body, csvOptions(r))
	} else {
		var req importRequest
		if derr := json.NewDecoder(r.Body).Decode(&req); derr != nil {
			writeError(w, http.StatusBadRequest, "INVALID_REQUEST", WrapKind(op, ErrBadRequest, derr))
			return
		}
		res, err = h.deps.Import(r.Context(), req.Records, req.Options)
	}
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}

	writeJSON(w, http.StatusOK, importResponse{Success: true, Result: res})
}

// csvOptions reads import options from the query string; a CSV body
// leaves no room for a JSON options object.
func csvOptions(r *http.Request) loader.Options {
	q := r.URL.Query()
	return loader.Options{
		ClearExisting: q.Get("clear_existing") == "true",
		ValidateOnly:  q.Get("validate_only") == "true",
	}
}
