// Package scoring implements the context-aware achievement priority engine.
//
// Scores are additive on top of a fixed base and intentionally unclamped:
// the import path in the loader package applies its own, independently
// clamped formula. The two are kept separate on purpose.
package scoring

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/swashington/snas/internal/domain/model"
)

// Default scoring configuration constants.
const (
	baseScore = 50

	defaultCSABoost           = 25
	defaultRecencyBoost       = 20
	defaultCertificationBoost = 30
	defaultIssuerBoost        = 15
	defaultRecencyWindowDays  = 90

	// staleDays stands in for a missing or unparseable earned date.
	staleDays = 999

	itRecruiterBoost      = 20
	veteranCommunityBoost = 15
	professionalsBoost    = 25

	highWeightMin   = 100
	mediumWeightMin = 75

	engagementBase = 0.6
	engagementMin  = 0.1
	engagementMax  = 0.95
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithBoosts overrides the rule point values. Non-positive values keep
// the defaults.
func WithBoosts(csa, recency, certification, issuer int) Option {
	return func(e *Engine) {
		if csa > 0 {
			e.csaBoost = csa
		}
		if recency > 0 {
			e.recencyBoost = recency
		}
		if certification > 0 {
			e.certificationBoost = certification
		}
		if issuer > 0 {
			e.issuerBoost = issuer
		}
	}
}

// WithRecencyWindow sets the number of days an achievement counts as recent.
func WithRecencyWindow(days int) Option {
	return func(e *Engine) {
		if days > 0 {
			e.recencyWindowDays = days
		}
	}
}

// WithClock injects the time source used for temporal scoring.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// Engine computes priority scores for achievements.
type Engine struct {
	csaBoost           int
	recencyBoost       int
	certificationBoost int
	issuerBoost        int
	recencyWindowDays  int
	now                func() time.Time
}

// NewEngine creates a scoring engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		csaBoost:           defaultCSABoost,
		recencyBoost:       defaultRecencyBoost,
		certificationBoost: defaultCertificationBoost,
		issuerBoost:        defaultIssuerBoost,
		recencyWindowDays:  defaultRecencyWindowDays,
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ScoreBadges scores every achievement and returns them ordered by
// descending priority. The sort is stable: equal scores keep their
// original relative order (lowest input index wins).
//
// A nil badge slice or missing profile is an input error. Individual
// badges with missing optional fields are scored as if the relevant rule
// simply did not apply.
func (e *Engine) ScoreBadges(ctx context.Context, badges []model.Achievement, profile *model.UserProfile, sctx model.Context) ([]model.ScoredAchievement, error) {
	if badges == nil || profile == nil {
		return nil, ErrInvalidInput
	}

	scored := make([]model.ScoredAchievement, 0, len(badges))
	for _, badge := range badges {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scoring interrupted: %w", err)
		}
		scored = append(scored, e.scoreOne(badge, sctx))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].PriorityScore > scored[j].PriorityScore
	})
	return scored, nil
}

// scoreOne applies the rules in fixed order so the reasoning trail is
// reproducible: CSA, recency, type, audience, issuer.
func (e *Engine) scoreOne(badge model.Achievement, sctx model.Context) model.ScoredAchievement {
	score := baseScore
	var reasoning []string

	if strings.Contains(strings.ToLower(badge.Name), "csa") {
		score += e.csaBoost
		reasoning = append(reasoning, fmt.Sprintf("CSA certification priority boost (+%d)", e.csaBoost))
	}

	if e.daysSince(badge) <= e.recencyWindowDays {
		score += e.recencyBoost
		reasoning = append(reasoning, fmt.Sprintf("Recent achievement boost (+%d)", e.recencyBoost))
	}

	if badge.Type == model.TypeCertification {
		score += e.certificationBoost
		reasoning = append(reasoning, fmt.Sprintf("Certification type boost (+%d)", e.certificationBoost))
	}

	if sctx.TargetAudience != "" {
		if boost := audienceBoost(badge, sctx.TargetAudience); boost > 0 {
			score += boost
			reasoning = append(reasoning, fmt.Sprintf("Audience targeting boost (+%d)", boost))
		}
	}

	if strings.Contains(strings.ToLower(badge.Issuer), strings.ToLower(model.PlatformIssuer)) {
		score += e.issuerBoost
		reasoning = append(reasoning, fmt.Sprintf("%s platform relevance (+%d)", model.PlatformIssuer, e.issuerBoost))
	}

	id := badge.ID
	if id == "" {
		id = badge.Name
	}

	return model.ScoredAchievement{
		BadgeID:              id,
		Badge:                badge,
		PriorityScore:        score,
		Reasoning:            reasoning,
		DisplayWeight:        displayWeight(score),
		EngagementPrediction: predictEngagement(score),
	}
}

// daysSince returns whole days since the badge was earned, or staleDays
// when the date is absent or malformed.
func (e *Engine) daysSince(badge model.Achievement) int {
	earned, ok := badge.EarnedTime()
	if !ok {
		return staleDays
	}
	return int(e.now().Sub(earned).Hours() / 24)
}

// audienceBoost implements the audience weighting table. Unrecognized
// audiences contribute nothing; that default is deliberate.
func audienceBoost(badge model.Achievement, audience model.Audience) int {
	switch audience {
	case model.AudienceITRecruiters:
		if strings.Contains(badge.Name, "CSA") || strings.Contains(badge.Name, "CIS") {
			return itRecruiterBoost
		}
	case model.AudienceVeterans:
		if strings.Contains(strings.ToLower(badge.Description), "leadership") {
			return veteranCommunityBoost
		}
	case model.AudienceProfessionals:
		if strings.Contains(strings.ToLower(badge.Issuer), strings.ToLower(model.PlatformIssuer)) {
			return professionalsBoost
		}
	}
	return 0
}

// displayWeight buckets a score for UI prominence.
func displayWeight(score int) string {
	switch {
	case score >= highWeightMin:
		return "high"
	case score >= mediumWeightMin:
		return "medium"
	default:
		return "low"
	}
}

// predictEngagement maps a score onto a bounded engagement estimate.
func predictEngagement(score int) float64 {
	p := engagementBase + float64(score-baseScore)/100
	if p > engagementMax {
		return engagementMax
	}
	if p < engagementMin {
		return engagementMin
	}
	return p
}
