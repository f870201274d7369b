package loader

import (
	"strings"
	"time"

	"github.com/swashington/snas/internal/domain/model"
)

// Import-time scoring constants. This formula is independent of the live
// engine: it clamps, the engine does not. The divergence is inherited
// behavior and both paths are kept and tested separately.
const (
	importBaseScore     = 50
	importCSABoost      = 25
	importPlatformBoost = 15
	importCertBoost     = 30
	importRecencyBoost  = 20
	importVeteranBoost  = 15

	importScoreFloor = 10
	importScoreCap   = 100

	importRecencyWindowDays = 90
)

// Keyword tables for import-time relevance boosts.
var (
	platformKeywords = []string{"servicenow", "csa", "cis", "itsm", "platform"}
	veteranKeywords  = []string{"military", "navy", "veteran", "leadership", "service", "mentorship"}
)

// ImportScore computes the batch-import priority score for a record:
// additive boosts over a base of 50, clamped to [10,100]. Malformed or
// missing dates simply earn no recency boost.
func ImportScore(a model.Achievement, now time.Time) int {
	score := importBaseScore

	name := strings.ToLower(a.Name)
	issuer := strings.ToLower(a.Issuer)
	description := strings.ToLower(a.Description)

	if strings.Contains(name, "csa") {
		score += importCSABoost
	}
	if matchesAny(platformKeywords, name, issuer) {
		score += importPlatformBoost
	}
	if a.Type == model.TypeCertification {
		score += importCertBoost
	}
	if earned, ok := a.EarnedTime(); ok {
		days := int(now.Sub(earned).Hours() / 24)
		if days <= importRecencyWindowDays {
			score += importRecencyBoost
		}
	}
	if matchesAny(veteranKeywords, name, description) {
		score += importVeteranBoost
	}

	if score > importScoreCap {
		return importScoreCap
	}
	if score < importScoreFloor {
		return importScoreFloor
	}
	return score
}

// matchesAny reports whether any keyword occurs in any of the fields.
// Fields must already be lowercased.
func matchesAny(keywords []string, fields ...string) bool {
	for _, kw := range keywords {
		for _, f := range fields {
			if strings.Contains(f, kw) {
				return true
			}
		}
	}
	return false
}
