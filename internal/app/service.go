// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	aiclient "github.com/swashington/snas/internal/adapters/ai"
	"github.com/swashington/snas/internal/adapters/cache"
	"github.com/swashington/snas/internal/adapters/repository"
	"github.com/swashington/snas/internal/domain/content"
	"github.com/swashington/snas/internal/domain/model"
	"github.com/swashington/snas/internal/domain/perf"
	"github.com/swashington/snas/internal/domain/scoring"
	"github.com/swashington/snas/internal/loader"
	"github.com/swashington/snas/pkg/logger"
	"github.com/swashington/snas/pkg/metrics"
)

// Service wires the achievement store, the scoring engine, the content
// generator, and the import loader behind one API surface.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     repository.Store
	cache     cache.Cache
	engine    *scoring.Engine
	analyzer  content.Analyzer
	generator *content.Generator
	loader    *loader.Loader
	tracker   *perf.Tracker

	// Configuration
	aiBaseURL     string
	aiAPIKey      string
	aiTimeout     time.Duration
	sla           time.Duration
	cacheTTL      time.Duration
	redisAddr     string
	redisPassword string

	csaBoost          int
	recencyBoost      int
	certBoost         int
	issuerBoost       int
	recencyWindowDays int
	batchSize         int
	maxBadgeLimit     int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore injects a prebuilt achievement store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithCache injects a prebuilt cache, bypassing redis_addr selection.
func WithCache(c cache.Cache) Option {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithAnalyzer injects a prebuilt AI analyzer, mainly for tests.
func WithAnalyzer(a content.Analyzer) Option {
	return func(s *Service) {
		if a != nil {
			s.analyzer = a
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAIBackend configures the external analysis service. An empty key
// leaves the backend unavailable and generation on templates.
func WithAIBackend(baseURL, apiKey string) Option {
	return func(s *Service) {
		s.aiBaseURL = baseURL
		s.aiAPIKey = apiKey
	}
}

// WithAITimeout bounds each AI backend call.
func WithAITimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.aiTimeout = d
		}
	}
}

// WithSLA sets the advisory per-call latency target.
func WithSLA(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.sla = d
		}
	}
}

// WithCacheTTL sets how long generated content stays cached.
func WithCacheTTL(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.cacheTTL = d
		}
	}
}

// WithRedis selects the Redis cache backend.
func WithRedis(addr, password string) Option {
	return func(s *Service) {
		s.redisAddr = addr
		s.redisPassword = password
	}
}

// WithBoosts overrides the live scoring boost constants.
func WithBoosts(csa, recency, certification, issuer int) Option {
	return func(s *Service) {
		s.csaBoost = csa
		s.recencyBoost = recency
		s.certBoost = certification
		s.issuerBoost = issuer
	}
}

// WithRecencyWindow sets the recency boost horizon in days.
func WithRecencyWindow(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.recencyWindowDays = days
		}
	}
}

// WithImportBatchSize sets the default bulk import batch size.
func WithImportBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithMaxBadgeLimit caps listing page sizes.
func WithMaxBadgeLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBadgeLimit = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		aiTimeout:         1500 * time.Millisecond,
		sla:               perf.DefaultSLA,
		cacheTTL:          5 * time.Minute,
		csaBoost:          25,
		recencyBoost:      20,
		certBoost:         30,
		issuerBoost:       15,
		recencyWindowDays: 90,
		batchSize:         loader.DefaultBatchSize,
		maxBadgeLimit:     100,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting achievement service...")

	if s.store == nil {
		s.store = repository.NewMemoryStore()
	}

	if s.cache == nil {
		if s.redisAddr != "" {
			rc := cache.NewRedis(s.redisAddr, s.redisPassword)
			if err := rc.Ping(ctx); err != nil {
				return fmt.Errorf("redis cache at %s: %w", s.redisAddr, err)
			}
			s.cache = rc
			s.logger.Info(ctx, "using redis cache", logger.String("addr", s.redisAddr))
		} else {
			s.cache = cache.NewMemory()
			s.logger.Info(ctx, "using in-memory cache")
		}
	}

	if s.analyzer == nil {
		s.analyzer = aiclient.NewClient(s.aiBaseURL, s.aiAPIKey, aiclient.WithTimeout(s.aiTimeout))
	}

	s.tracker = perf.NewTracker(perf.WithSLA(s.sla))
	s.engine = scoring.NewEngine(
		scoring.WithBoosts(s.csaBoost, s.recencyBoost, s.certBoost, s.issuerBoost),
		scoring.WithRecencyWindow(s.recencyWindowDays),
	)
	s.generator = content.NewGenerator(s.analyzer, s.cache, s.tracker, content.WithCacheTTL(s.cacheTTL))
	s.loader = loader.New(s.store, loader.WithBatchSize(s.batchSize))

	s.started = true
	s.logger.Info(ctx, "achievement service started",
		logger.Bool("aiAvailable", s.analyzer.Available()),
		logger.Duration("sla", s.sla),
		logger.Duration("cacheTTL", s.cacheTTL),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping achievement service...")

	if closer, ok := s.cache.(io.Closer); ok {
		_ = closer.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "achievement service stopped")
}

// PrioritizeResult is one scoring run plus its performance metadata.
type PrioritizeResult struct {
	Badges         []model.ScoredAchievement
	ProcessingTime time.Duration
	SLACompliant   bool
}

// Prioritize scores the supplied badges for the profile and context.
func (s *Service) Prioritize(ctx context.Context, badges []model.Achievement, profile *model.UserProfile, sctx model.Context) (PrioritizeResult, error) {
	start := time.Now()

	scored, err := s.engine.ScoreBadges(ctx, badges, profile, sctx)
	if err != nil {
		metrics.RecordScoringError()
		return PrioritizeResult{}, err
	}

	elapsed := time.Since(start)
	compliant := s.tracker.ObserveCall(elapsed)
	if !compliant {
		metrics.RecordSLAViolation()
	}
	metrics.RecordBadgesScored(len(scored))
	metrics.RecordScoringLatency(float64(elapsed) / float64(time.Millisecond))

	return PrioritizeResult{
		Badges:         scored,
		ProcessingTime: elapsed,
		SLACompliant:   compliant,
	}, nil
}

// SuggestContent generates content variants for a stored badge.
// Returns repository.ErrNotFound when the id is unknown.
func (s *Service) SuggestContent(ctx context.Context, badgeID string, contentType model.ContentType, audience model.Audience) (content.Suggestions, model.Achievement, error) {
	badge, err := s.store.Get(ctx, badgeID)
	if err != nil {
		return content.Suggestions{}, model.Achievement{}, err
	}

	sctx := model.Context{TargetAudience: audience, ContentType: contentType}
	suggestions, err := s.generator.Generate(ctx, badge, contentType, sctx)
	if err != nil {
		return content.Suggestions{}, model.Achievement{}, err
	}
	metrics.RecordContentGenerated()
	return suggestions, badge, nil
}

// ListBadges returns a page of stored records plus the total match count.
// A non-positive limit falls back to the configured maximum.
func (s *Service) ListBadges(ctx context.Context, f repository.Filter, limit, offset int) ([]model.Achievement, int, error) {
	all, err := s.store.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	total := len(all)
	if limit <= 0 || limit > s.maxBadgeLimit {
		limit = s.maxBadgeLimit
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []model.Achievement{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

// UpsertBadge creates or updates a record keyed on (name, issuer). This
// is the single-record path; unlike the bulk loader it overwrites
// duplicates. Returns the record id and whether it was created.
func (s *Service) UpsertBadge(ctx context.Context, a model.Achievement) (string, bool, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.Issuer = loader.NormalizeIssuer(a.Issuer)
	a.Active = true
	if a.PriorityScore == 0 {
		a.PriorityScore = loader.ImportScore(a, time.Now())
	}

	id, created, err := s.store.Upsert(ctx, a)
	if err != nil {
		return "", false, err
	}
	metrics.UpdateTotalAchievements(s.store.Count(ctx))
	return id, created, nil
}

// Import runs a bulk import of inline records.
func (s *Service) Import(ctx context.Context, records []loader.Record, opts loader.Options) (loader.Result, error) {
	res, err := s.loader.Import(ctx, records, opts)
	if err != nil {
		return loader.Result{}, err
	}
	metrics.RecordImportRun(res.SuccessfulImports, res.FailedImports, res.DuplicatesSkipped)
	metrics.UpdateTotalAchievements(s.store.Count(ctx))
	s.logger.Info(ctx, "import completed",
		logger.Int("total", res.TotalRecords),
		logger.Int("imported", res.SuccessfulImports),
		logger.Int("failed", res.FailedImports),
		logger.Int("duplicates", res.DuplicatesSkipped),
	)
	return res, nil
}

// ImportCSV parses a CSV payload and runs a bulk import over it.
func (s *Service) ImportCSV(ctx context.Context, payload io.Reader, opts loader.Options) (loader.Result, error) {
	records, err := loader.ParseCSV(payload)
	if err != nil {
		return loader.Result{}, err
	}
	return s.Import(ctx, records, opts)
}

// ExportCSV renders the stored records matching the filter as CSV.
func (s *Service) ExportCSV(ctx context.Context, f repository.Filter) (string, error) {
	return s.loader.ExportCSV(ctx, f)
}

// Backfill rescores and reactivates records stored without a priority.
func (s *Service) Backfill(ctx context.Context) (loader.BackfillResult, error) {
	return s.loader.ValidateAndBackfill(ctx)
}

// Cleanup normalizes stored field noise in place.
func (s *Service) Cleanup(ctx context.Context) (loader.CleanupResult, error) {
	return s.loader.Cleanup(ctx)
}

// Statistics aggregates portfolio counts over active records.
func (s *Service) Statistics(ctx context.Context) (Statistics, error) {
	records, err := s.store.List(ctx, repository.Filter{ActiveOnly: true})
	if err != nil {
		return Statistics{}, err
	}
	return buildStatistics(records, time.Now()), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
		"sla_ms":  s.sla.Milliseconds(),
	}

	if s.started {
		snap := s.tracker.Snapshot()
		total := s.store.Count(context.Background())

		stats["api_call_count"] = snap.APICallCount
		stats["average_response_ms"] = snap.AverageResponseMS
		stats["sla_violations"] = snap.SLAViolations
		stats["cache_hits"] = snap.CacheHits
		stats["cache_misses"] = snap.CacheMisses
		stats["total_achievements"] = total
		stats["ai_available"] = s.analyzer.Available()

		metrics.UpdateTotalAchievements(total)
	}

	return stats
}
