package service

import (
	"strings"
	"time"

	"github.com/swashington/snas/internal/domain/model"
)

// recentWindowDays is the horizon for the recent-badge count.
const recentWindowDays = 90

// alignmentKeywords flag a record as veteran-mission aligned when any of
// them appears in its name, description, or category.
var alignmentKeywords = []string{"leadership", "service", "excellence", "discipline", "mission", "team"}

// Statistics summarizes the active achievement portfolio.
type Statistics struct {
	TotalBadges      int            `json:"total_badges"`
	Certifications   int            `json:"certifications"`
	Achievements     int            `json:"achievements"`
	ServiceNowBadges int            `json:"servicenow_badges"`
	RecentBadges     int            `json:"recent_badges"`
	VeteranAligned   int            `json:"veteran_aligned"`
	Categories       map[string]int `json:"categories"`
	Issuers          map[string]int `json:"issuers"`
}

// buildStatistics aggregates counts over the given records. Callers are
// expected to pass active records only.
func buildStatistics(records []model.Achievement, now time.Time) Statistics {
	stats := Statistics{
		TotalBadges: len(records),
		Categories:  make(map[string]int),
		Issuers:     make(map[string]int),
	}

	for _, a := range records {
		switch a.Type {
		case model.TypeCertification:
			stats.Certifications++
		case model.TypeAchievement:
			stats.Achievements++
		}

		if strings.Contains(strings.ToLower(a.Issuer), "servicenow") {
			stats.ServiceNowBadges++
		}

		if earned, ok := a.EarnedTime(); ok {
			if int(now.Sub(earned).Hours()/24) <= recentWindowDays {
				stats.RecentBadges++
			}
		}

		category := a.Category
		if category == "" {
			category = "Uncategorized"
		}
		stats.Categories[category]++
		stats.Issuers[a.Issuer]++

		if veteranAligned(a) {
			stats.VeteranAligned++
		}
	}

	return stats
}

// veteranAligned applies the keyword heuristic over the record's text
// fields.
func veteranAligned(a model.Achievement) bool {
	text := strings.ToLower(a.Name + " " + a.Description + " " + a.Category)
	for _, kw := range alignmentKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
