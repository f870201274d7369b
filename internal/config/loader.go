package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if SNAS_CONFIG is set
//  3. env (prefix SNAS_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("SNAS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: SNAS_ADDR, SNAS_AI_BASE_URL, ...
	// Map env keys like SNAS_AI_BASE_URL -> ai_base_url (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("SNAS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "snas_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects settings the service cannot start with.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.AITimeoutMS <= 0:
		return fmt.Errorf("%w: ai_timeout_ms must be positive", ErrInvalidConfig)
	case c.SLAMS <= 0:
		return fmt.Errorf("%w: sla_ms must be positive", ErrInvalidConfig)
	case c.CacheTTLMS <= 0:
		return fmt.Errorf("%w: cache_ttl_ms must be positive", ErrInvalidConfig)
	case c.RecencyWindowDays <= 0:
		return fmt.Errorf("%w: recency_window_days must be positive", ErrInvalidConfig)
	case c.ImportBatchSize <= 0:
		return fmt.Errorf("%w: import_batch_size must be positive", ErrInvalidConfig)
	case c.MaxBadgeLimit <= 0:
		return fmt.Errorf("%w: max_badge_limit must be positive", ErrInvalidConfig)
	}
	return nil
}
