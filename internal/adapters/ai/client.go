// Package ai wraps the external achievement-analysis service.
//
// Callers never see transport errors: every call resolves to a tagged
// Result that the content generator pattern-matches on, falling back to
// template generation for anything other than StatusOK.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/swashington/snas/internal/domain/model"
	"github.com/swashington/snas/pkg/metrics"
)

const (
	analyzePath    = "/analyze-achievement"
	defaultTimeout = 1500 * time.Millisecond
	clientHeader   = "snas-go/1.0"
)

// Status classifies the outcome of an analysis call.
type Status int

const (
	// StatusOK means the backend returned a usable analysis.
	StatusOK Status = iota
	// StatusUnavailable means no credential is configured.
	StatusUnavailable
	// StatusTimedOut means the bounded call exceeded its deadline.
	StatusTimedOut
	// StatusServiceError covers non-200 responses and malformed bodies.
	StatusServiceError
)

// Analysis mirrors the backend response schema.
type Analysis struct {
	LinkedInPost string  `json:"linkedin_post"`
	Summary      string  `json:"summary"`
	Confidence   float64 `json:"confidence"`
}

// Result is the tagged outcome of Analyze. Err carries detail for
// logging; it is never surfaced to API callers.
type Result struct {
	Status   Status
	Analysis Analysis
	Err      error
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithTimeout bounds each analysis call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// Client calls the external AI backend.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates an AI backend client. An empty apiKey produces a
// client that always reports StatusUnavailable.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		timeout:    defaultTimeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available reports whether a credential is configured.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

// analyzeRequest is the wire shape sent to the backend.
type analyzeRequest struct {
	Badge   analyzeBadge `json:"badge"`
	Context analyzeCtx   `json:"context"`
}

type analyzeBadge struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Issuer      string `json:"issuer"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type analyzeCtx struct {
	TargetAudience   string `json:"target_audience"`
	ContentType      string `json:"content_type,omitempty"`
	VeteranNarrative bool   `json:"veteran_narrative"`
}

// Analyze posts the badge to the backend within the configured timeout.
func (c *Client) Analyze(ctx context.Context, badge model.Achievement, sctx model.Context) Result {
	if !c.Available() {
		return Result{Status: StatusUnavailable, Err: ErrNoCredential}
	}
	metrics.RecordAICall()

	audience := sctx.TargetAudience
	if audience == "" {
		audience = model.AudienceITRecruiters
	}
	payload := analyzeRequest{
		Badge: analyzeBadge{
			Name:        badge.Name,
			Type:        string(badge.Type),
			Issuer:      badge.Issuer,
			Description: badge.Description,
			Category:    badge.Category,
		},
		Context: analyzeCtx{
			TargetAudience:   string(audience),
			ContentType:      string(sctx.ContentType),
			VeteranNarrative: true,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Status: StatusServiceError, Err: fmt.Errorf("encode request: %w", err)}
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(body))
	if err != nil {
		return Result{Status: StatusServiceError, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-SNAS-Client", clientHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() != nil {
			return Result{Status: StatusTimedOut, Err: fmt.Errorf("%w: %w", ErrTimeout, err)}
		}
		return Result{Status: StatusServiceError, Err: fmt.Errorf("%w: %w", ErrService, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Result{Status: StatusServiceError, Err: fmt.Errorf("%w: status %d", ErrService, resp.StatusCode)}
	}

	var analysis Analysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		return Result{Status: StatusServiceError, Err: fmt.Errorf("%w: decode response: %w", ErrService, err)}
	}
	return Result{Status: StatusOK, Analysis: analysis}
}
