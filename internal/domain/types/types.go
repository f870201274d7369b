// Package types contains common wire types used across the application
package types

import "github.com/swashington/snas/internal/domain/model"

// BadgeView is the read shape for a stored achievement.
type BadgeView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Issuer        string `json:"issuer"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	DateEarned    string `json:"date_earned,omitempty"`
	PriorityScore int    `json:"priority_score"`
	Active        bool   `json:"active"`
}

// ScoredBadge is the prioritization read shape returned by the API.
type ScoredBadge struct {
	BadgeID              string    `json:"badge_id"`
	Badge                BadgeView `json:"badge_data"`
	PriorityScore        int       `json:"priority_score"`
	Reasoning            []string  `json:"reasoning,omitempty"`
	DisplayWeight        string    `json:"display_weight"`
	EngagementPrediction float64   `json:"engagement_prediction"`
}

// ViewOf converts a domain achievement to its read shape.
func ViewOf(a model.Achievement) BadgeView {
	return BadgeView{
		ID:            a.ID,
		Name:          a.Name,
		Type:          string(a.Type),
		Issuer:        a.Issuer,
		Description:   a.Description,
		Category:      a.Category,
		DateEarned:    a.DateEarned,
		PriorityScore: a.PriorityScore,
		Active:        a.Active,
	}
}

// ScoredViewOf converts a scored achievement to its read shape. Reasoning
// is dropped when the caller did not ask for it.
func ScoredViewOf(s model.ScoredAchievement, includeReasoning bool) ScoredBadge {
	v := ScoredBadge{
		BadgeID:              s.BadgeID,
		Badge:                ViewOf(s.Badge),
		PriorityScore:        s.PriorityScore,
		DisplayWeight:        s.DisplayWeight,
		EngagementPrediction: s.EngagementPrediction,
	}
	if includeReasoning {
		v.Reasoning = s.Reasoning
	}
	return v
}
