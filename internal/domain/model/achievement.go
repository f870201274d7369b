// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"
)

// DateLayout is the wire format for earned dates.
const DateLayout = "2006-01-02"

// PlatformIssuer is the canonical spelling of the host platform name.
const PlatformIssuer = "ServiceNow"

// Type enumerates the closed set of achievement kinds.
type Type string

// Achievement types accepted by the importer and the REST boundary.
const (
	TypeCertification Type = "certification"
	TypeBadge         Type = "badge"
	TypeAchievement   Type = "achievement"
)

// Valid reports whether t is a member of the closed enumeration.
func (t Type) Valid() bool {
	switch t {
	case TypeCertification, TypeBadge, TypeAchievement:
		return true
	}
	return false
}

// Audience enumerates recognized targeting hints. Unrecognized values are
// accepted but contribute no audience boost.
type Audience string

const (
	AudienceITRecruiters  Audience = "it_recruiters"
	AudienceVeterans      Audience = "veteran_community"
	AudienceProfessionals Audience = "servicenow_professionals"
	AudienceGeneral       Audience = "general"
)

// ContentType enumerates the kinds of generated content.
type ContentType string

const (
	ContentLinkedInPost     ContentType = "linkedin_post"
	ContentBadgeDescription ContentType = "badge_description"
	ContentSummary          ContentType = "professional_summary"
)

// Valid reports whether c names a supported content type.
func (c ContentType) Valid() bool {
	switch c {
	case ContentLinkedInPost, ContentBadgeDescription, ContentSummary:
		return true
	}
	return false
}

// Achievement is a single certification, badge, or recognition record.
type Achievement struct {
	ID          string
	Name        string
	Type        Type
	Issuer      string
	Description string
	Category    string
	// DateEarned holds an ISO date (DateLayout). Empty means unknown and
	// is treated as maximally stale by temporal scoring.
	DateEarned    string
	PriorityScore int
	Active        bool
}

// EarnedTime parses DateEarned. The second return is false when the date
// is absent or malformed.
func (a Achievement) EarnedTime() (time.Time, bool) {
	if strings.TrimSpace(a.DateEarned) == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(a.DateEarned))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// UserProfile carries the caller-supplied subject of a prioritization run.
type UserProfile struct {
	UserID      string
	DisplayName string
	Headline    string
	Veteran     bool
}

// Context is the tagged configuration struct for scoring and content
// generation. Unrecognized request keys are rejected at the boundary
// rather than silently ignored.
type Context struct {
	TargetAudience   Audience
	IncludeReasoning bool
	ContentType      ContentType
}

// ScoredAchievement wraps an Achievement with its computed priority.
type ScoredAchievement struct {
	BadgeID              string
	Badge                Achievement
	PriorityScore        int
	Reasoning            []string
	DisplayWeight        string
	EngagementPrediction float64
}

// ContentSuggestion is one generated content variant.
type ContentSuggestion struct {
	Content        string  `json:"content"`
	Confidence     float64 `json:"confidence"`
	VeteranAligned bool    `json:"veteran_aligned"`
	Style          string  `json:"style"`
}
