// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with documented defaults.
// - Layer file and environment overrides in Load.
// - External errors must be wrapped via this package's sentinels.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// AIBaseURL is the content analysis backend root. Empty disables the
	// AI path entirely; generation then always uses templates.
	AIBaseURL string `koanf:"ai_base_url"`

	// AIAPIKey authenticates against the AI backend. Empty means the
	// backend is treated as unavailable.
	AIAPIKey string `koanf:"ai_api_key"`

	// AITimeoutMS bounds each AI backend call.
	AITimeoutMS int `koanf:"ai_timeout_ms"`

	// SLAMS is the advisory per-call latency target. Calls over it still
	// complete; they are flagged and counted.
	SLAMS int `koanf:"sla_ms"`

	// CacheTTLMS is how long generated content stays cached.
	CacheTTLMS int `koanf:"cache_ttl_ms"`

	// RedisAddr selects the Redis cache backend when set. Empty keeps
	// the in-memory cache.
	RedisAddr string `koanf:"redis_addr"`

	// RedisPassword is the optional credential for RedisAddr.
	RedisPassword string `koanf:"redis_password"`

	// Scoring boosts for the live prioritization engine.
	CSABoost           int `koanf:"csa_boost"`
	RecencyBoost       int `koanf:"recency_boost"`
	CertificationBoost int `koanf:"certification_boost"`
	IssuerBoost        int `koanf:"issuer_boost"`

	// RecencyWindowDays is the recency boost horizon.
	RecencyWindowDays int `koanf:"recency_window_days"`

	// ImportBatchSize bounds per-call work during bulk imports.
	ImportBatchSize int `koanf:"import_batch_size"`

	// MaxBadgeLimit caps GET /api/v1/badges?limit.
	MaxBadgeLimit int `koanf:"max_badge_limit"`
}

// New creates a Config with the documented defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":8080",
		AITimeoutMS:        1500,
		SLAMS:              2000,
		CacheTTLMS:         300_000,
		CSABoost:           25,
		RecencyBoost:       20,
		CertificationBoost: 30,
		IssuerBoost:        15,
		RecencyWindowDays:  90,
		ImportBatchSize:    50,
		MaxBadgeLimit:      100,
	}
}
