// Package content generates audience-aware achievement content.
//
// Generation prefers the external AI backend when a credential is
// configured and falls back to deterministic templates for every other
// outcome. Results are cached per (badge, content type, audience) tuple.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	aiclient "github.com/swashington/snas/internal/adapters/ai"
	"github.com/swashington/snas/internal/adapters/cache"
	"github.com/swashington/snas/internal/domain/model"
	"github.com/swashington/snas/internal/domain/perf"
	"github.com/swashington/snas/pkg/metrics"
)

// Source labels for the api_source metadata field.
const (
	SourceAI       = "ai_backend"
	SourceFallback = "template_fallback"
	SourceCache    = "cache"
)

const defaultCacheTTL = 5 * time.Minute

// Analyzer abstracts the AI backend client.
type Analyzer interface {
	Available() bool
	Analyze(ctx context.Context, badge model.Achievement, sctx model.Context) aiclient.Result
}

// Suggestions is the result of one generation call, including the
// advisory performance metadata the boundary reports to callers.
type Suggestions struct {
	Suggestions    []model.ContentSuggestion
	CacheHit       bool
	APISource      string
	ProcessingTime time.Duration
	SLACompliant   bool
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithCacheTTL sets how long generated content stays cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(g *Generator) {
		if ttl > 0 {
			g.cacheTTL = ttl
		}
	}
}

// Generator produces content suggestions for achievements.
type Generator struct {
	analyzer Analyzer
	store    cache.Cache
	tracker  *perf.Tracker
	cacheTTL time.Duration
}

// NewGenerator creates a content generator. The tracker accumulates this
// generator's latency and cache counters; callers own the instance.
func NewGenerator(analyzer Analyzer, store cache.Cache, tracker *perf.Tracker, opts ...Option) *Generator {
	g := &Generator{
		analyzer: analyzer,
		store:    store,
		tracker:  tracker,
		cacheTTL: defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns content suggestions for the badge. The AI backend is
// consulted only on a cache miss and only when available; any non-Ok
// backend outcome silently degrades to template content. Errors are
// reserved for caller mistakes, never for backend trouble.
func (g *Generator) Generate(ctx context.Context, badge model.Achievement, contentType model.ContentType, sctx model.Context) (Suggestions, error) {
	start := time.Now()

	if !contentType.Valid() {
		return Suggestions{}, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}

	key := cacheKey(badge, contentType, sctx.TargetAudience)

	if cached, ok := g.readCache(ctx, key); ok {
		g.tracker.RecordCacheHit()
		metrics.RecordContentCacheHit()
		return g.finish(start, Suggestions{Suggestions: cached, CacheHit: true, APISource: SourceCache}), nil
	}
	g.tracker.RecordCacheMiss()
	metrics.RecordContentCacheMiss()

	suggestions, source := g.generate(ctx, badge, contentType, sctx)
	g.writeCache(ctx, key, suggestions)

	return g.finish(start, Suggestions{Suggestions: suggestions, APISource: source}), nil
}

// generate runs the AI path when possible and degrades to templates.
func (g *Generator) generate(ctx context.Context, badge model.Achievement, contentType model.ContentType, sctx model.Context) ([]model.ContentSuggestion, string) {
	if g.analyzer == nil || !g.analyzer.Available() {
		return fallbackSuggestions(badge, contentType), SourceFallback
	}

	res := g.analyzer.Analyze(ctx, badge, sctx)
	switch res.Status {
	case aiclient.StatusOK:
		return suggestionsFromAnalysis(res.Analysis, contentType), SourceAI
	default:
		// Timeouts, service errors, and missing credentials all land
		// here; the caller never sees them.
		metrics.RecordAIFallback()
		return fallbackSuggestions(badge, contentType), SourceFallback
	}
}

// finish stamps latency and SLA compliance onto the result.
func (g *Generator) finish(start time.Time, s Suggestions) Suggestions {
	s.ProcessingTime = time.Since(start)
	s.SLACompliant = g.tracker.ObserveCall(s.ProcessingTime)
	if !s.SLACompliant {
		metrics.RecordSLAViolation()
	}
	metrics.RecordContentLatency(float64(s.ProcessingTime) / float64(time.Millisecond))
	return s
}

func (g *Generator) readCache(ctx context.Context, key string) ([]model.ContentSuggestion, bool) {
	payload, ok, err := g.store.Get(ctx, key)
	if err != nil || !ok {
		// An unreachable cache is treated as a miss; generation works
		// without it.
		return nil, false
	}
	var cached []model.ContentSuggestion
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, false
	}
	return cached, true
}

func (g *Generator) writeCache(ctx context.Context, key string, suggestions []model.ContentSuggestion) {
	payload, err := json.Marshal(suggestions)
	if err != nil {
		return
	}
	_ = g.store.Set(ctx, key, payload, g.cacheTTL)
}

// cacheKey builds the composite content key. An unset audience caches
// under "default" so it never collides with a targeted variant.
func cacheKey(badge model.Achievement, contentType model.ContentType, audience model.Audience) string {
	id := badge.ID
	if id == "" {
		id = badge.Name
	}
	aud := string(audience)
	if aud == "" {
		aud = "default"
	}
	return fmt.Sprintf("snas_content_%s_%s_%s", id, contentType, aud)
}

// suggestionsFromAnalysis adapts a backend analysis to the suggestion
// shape for the requested content type.
func suggestionsFromAnalysis(a aiclient.Analysis, contentType model.ContentType) []model.ContentSuggestion {
	text := a.Summary
	if contentType == model.ContentLinkedInPost {
		text = a.LinkedInPost
	}
	confidence := a.Confidence
	if confidence <= 0 || confidence > 1 {
		confidence = 0.85
	}
	return []model.ContentSuggestion{{
		Content:        text,
		Confidence:     confidence,
		VeteranAligned: true,
		Style:          "ai_generated",
	}}
}
