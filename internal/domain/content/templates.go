package content

import (
	"fmt"
	"strings"

	"github.com/swashington/snas/internal/domain/model"
)

// category is the normalized template family for fallback generation.
type category string

const (
	categoryServiceNow    category = "ServiceNow"
	categoryMilitary      category = "Military"
	categoryCertification category = "Certification"
	categoryCommunity     category = "Community"
)

// normalizeCategory maps a free-text achievement category onto a template
// family. Anything unrecognized renders with the ServiceNow family.
func normalizeCategory(raw string) category {
	c := strings.ToLower(raw)
	switch {
	case strings.Contains(c, "milit") || strings.Contains(c, "navy") || strings.Contains(c, "service excellence"):
		return categoryMilitary
	case strings.Contains(c, "commun") || strings.Contains(c, "veteran advocacy") || strings.Contains(c, "mentor"):
		return categoryCommunity
	case strings.Contains(c, "certif") || strings.Contains(c, "security") || strings.Contains(c, "cloud"):
		return categoryCertification
	default:
		return categoryServiceNow
	}
}

// profile carries the category-specific phrasing woven into templates.
type profile struct {
	theme    string
	hashtags string
}

var profiles = map[category]profile{
	categoryServiceNow: {
		theme:    "ServiceNow platform expertise",
		hashtags: "#ServiceNow #VeteranInTech #ProfessionalDevelopment",
	},
	categoryMilitary: {
		theme:    "mission-focused discipline from military service",
		hashtags: "#ServiceToSuccess #VeteranInnovation #MissionDriven",
	},
	categoryCertification: {
		theme:    "validated professional certification expertise",
		hashtags: "#ContinuousLearning #Certified #VeteranInTech",
	},
	categoryCommunity: {
		theme:    "community leadership and veteran mentorship",
		hashtags: "#VeteranMentorship #CommunityImpact #TechLeadership",
	},
}

// Fixed confidence scores for fallback variants. These are template
// priors, not measured values.
const (
	confidenceProfessional = 0.85
	confidenceMission      = 0.82
	confidenceLeadership   = 0.88
	confidenceTechnical    = 0.84
	confidenceImpact       = 0.83
	confidenceSummary      = 0.86
)

// fallbackSuggestions renders deterministic content variants for a badge.
// Every variant embeds badge.Name verbatim and closes with the category
// hashtags.
func fallbackSuggestions(badge model.Achievement, contentType model.ContentType) []model.ContentSuggestion {
	p := profiles[normalizeCategory(badge.Category)]

	switch contentType {
	case model.ContentLinkedInPost:
		return []model.ContentSuggestion{
			{
				Content: fmt.Sprintf(
					"Proud to earn my %s! This achievement reflects a sustained commitment to %s and to excellence in everything I take on. %s",
					badge.Name, p.theme, p.hashtags),
				Confidence:     confidenceProfessional,
				VeteranAligned: true,
				Style:          "professional_achievement",
			},
			{
				Content: fmt.Sprintf(
					"Mission accomplished: %s earned. The same focus that drove success in uniform now powers %s. Veterans bring discipline the tech industry needs. %s",
					badge.Name, p.theme, p.hashtags),
				Confidence:     confidenceMission,
				VeteranAligned: true,
				Style:          "service_to_success",
			},
			{
				Content: fmt.Sprintf(
					"Leadership through expertise: %s. True leadership means continuous learning and helping others succeed, and this milestone in %s is a step on that path. %s",
					badge.Name, p.theme, p.hashtags),
				Confidence:     confidenceLeadership,
				VeteranAligned: true,
				Style:          "technical_leadership",
			},
		}

	case model.ContentBadgeDescription:
		return []model.ContentSuggestion{
			{
				Content: fmt.Sprintf(
					"The %s achievement demonstrates advanced proficiency in %s, with a systematic, detail-oriented approach to complex requirements. %s",
					badge.Name, p.theme, p.hashtags),
				Confidence:     confidenceTechnical,
				VeteranAligned: true,
				Style:          "technical_focus",
			},
			{
				Content: fmt.Sprintf(
					"Earning %s reflects leadership principles and a commitment to excellence: driving initiatives, mentoring teammates, and delivering under pressure. %s",
					badge.Name, p.hashtags),
				Confidence:     confidenceLeadership,
				VeteranAligned: true,
				Style:          "leadership_focus",
			},
			{
				Content: fmt.Sprintf(
					"%s represents measurable impact through %s: improved efficiency, reduced cost, and better outcomes across enterprise operations. %s",
					badge.Name, p.theme, p.hashtags),
				Confidence:     confidenceImpact,
				VeteranAligned: true,
				Style:          "business_impact",
			},
		}

	case model.ContentSummary:
		return []model.ContentSuggestion{
			{
				Content: fmt.Sprintf(
					"Accomplished professional with a military background bringing %s to technology solutions. The %s achievement anchors a record of disciplined delivery. %s",
					p.theme, badge.Name, p.hashtags),
				Confidence:     confidenceSummary,
				VeteranAligned: true,
				Style:          "professional_achievement",
			},
			{
				Content: fmt.Sprintf(
					"Veteran technologist focused on %s. %s reflects the mission-first mindset carried from service into every engagement. %s",
					p.theme, badge.Name, p.hashtags),
				Confidence:     confidenceMission,
				VeteranAligned: true,
				Style:          "service_to_success",
			},
		}
	}
	return nil
}
