package scoring_test

import (
	"context"
	"testing"
	"time"

	"github.com/swashington/snas/internal/domain/model"
	scoring "github.com/swashington/snas/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

// fixedNow pins the clock so recency assertions are exact.
var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine(opts ...scoring.Option) *scoring.Engine {
	opts = append([]scoring.Option{scoring.WithClock(func() time.Time { return fixedNow })}, opts...)
	return scoring.NewEngine(opts...)
}

func earnedDaysAgo(days int) string {
	return fixedNow.AddDate(0, 0, -days).Format(model.DateLayout)
}

func TestEngine_ScoreBadges(t *testing.T) {
	Convey("Given a scoring engine with a fixed clock", t, func() {
		engine := newTestEngine()
		profile := &model.UserProfile{UserID: "u1", Veteran: true}

		Convey("When scoring a recent CSA certification from the platform issuer for IT recruiters", func() {
			badges := []model.Achievement{{
				ID:         "b1",
				Name:       "Certified System Administrator (CSA)",
				Type:       model.TypeCertification,
				Issuer:     "ServiceNow",
				DateEarned: earnedDaysAgo(30),
			}}
			sctx := model.Context{TargetAudience: model.AudienceITRecruiters, IncludeReasoning: true}

			scored, err := engine.ScoreBadges(context.Background(), badges, profile, sctx)

			Convey("Then every boost applies and the sum is unclamped", func() {
				So(err, ShouldBeNil)
				So(scored, ShouldHaveLength, 1)
				// 50 + 25 (csa) + 20 (recent) + 30 (cert) + 20 (audience) + 15 (issuer)
				So(scored[0].PriorityScore, ShouldEqual, 160)
				So(scored[0].DisplayWeight, ShouldEqual, "high")
			})

			Convey("And the reasoning trail follows rule application order", func() {
				So(err, ShouldBeNil)
				So(scored[0].Reasoning, ShouldResemble, []string{
					"CSA certification priority boost (+25)",
					"Recent achievement boost (+20)",
					"Certification type boost (+30)",
					"Audience targeting boost (+20)",
					"ServiceNow platform relevance (+15)",
				})
			})
		})

		Convey("When a badge is both a CSA and a certification", func() {
			badges := []model.Achievement{{
				Name: "CSA Prep Badge",
				Type: model.TypeCertification,
			}}
			scored, err := engine.ScoreBadges(context.Background(), badges, profile, model.Context{})

			Convey("Then both boosts stack additively", func() {
				So(err, ShouldBeNil)
				So(scored[0].PriorityScore, ShouldEqual, 50+25+30)
				So(scored[0].Reasoning, ShouldHaveLength, 2)
				So(scored[0].Reasoning[0], ShouldContainSubstring, "CSA")
				So(scored[0].Reasoning[1], ShouldContainSubstring, "Certification type")
			})
		})

		Convey("When a badge was earned exactly 90 days ago", func() {
			badges := []model.Achievement{{Name: "Edge Badge", Type: model.TypeBadge, DateEarned: earnedDaysAgo(90)}}
			scored, err := engine.ScoreBadges(context.Background(), badges, profile, model.Context{})

			Convey("Then the recency boost applies (boundary inclusive)", func() {
				So(err, ShouldBeNil)
				So(scored[0].PriorityScore, ShouldEqual, 50+20)
			})
		})

		Convey("When a badge was earned 91 days ago", func() {
			badges := []model.Achievement{{Name: "Edge Badge", Type: model.TypeBadge, DateEarned: earnedDaysAgo(91)}}
			scored, err := engine.ScoreBadges(context.Background(), badges, profile, model.Context{})

			Convey("Then the recency boost does not apply", func() {
				So(err, ShouldBeNil)
				So(scored[0].PriorityScore, ShouldEqual, 50)
			})
		})

		Convey("When a badge has no earned date", func() {
			badges := []model.Achievement{{Name: "Undated", Type: model.TypeBadge}}
			scored, err := engine.ScoreBadges(context.Background(), badges, profile, model.Context{})

			Convey("Then it is treated as maximally stale", func() {
				So(err, ShouldBeNil)
				So(scored[0].PriorityScore, ShouldEqual, 50)
			})
		})

		Convey("When scoring the same badge twice", func() {
			badges := []model.Achievement{{
				Name:        "CSA",
				Type:        model.TypeCertification,
				Issuer:      "ServiceNow",
				Description: "leadership in platform operations",
				DateEarned:  earnedDaysAgo(10),
			}}
			sctx := model.Context{TargetAudience: model.AudienceVeterans}

			first, err1 := engine.ScoreBadges(context.Background(), badges, profile, sctx)
			second, err2 := engine.ScoreBadges(context.Background(), badges, profile, sctx)

			Convey("Then the score and reasoning are identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(first[0].PriorityScore, ShouldEqual, second[0].PriorityScore)
				So(first[0].Reasoning, ShouldResemble, second[0].Reasoning)
			})
		})

		Convey("When several badges tie on score", func() {
			badges := []model.Achievement{
				{ID: "first", Name: "Alpha", Type: model.TypeBadge},
				{ID: "second", Name: "Beta", Type: model.TypeBadge},
				{ID: "third", Name: "Gamma", Type: model.TypeBadge},
			}
			scored, err := engine.ScoreBadges(context.Background(), badges, profile, model.Context{})

			Convey("Then the original input order is preserved", func() {
				So(err, ShouldBeNil)
				So(scored[0].BadgeID, ShouldEqual, "first")
				So(scored[1].BadgeID, ShouldEqual, "second")
				So(scored[2].BadgeID, ShouldEqual, "third")
			})
		})

		Convey("When badges have different scores", func() {
			badges := []model.Achievement{
				{ID: "low", Name: "Plain", Type: model.TypeBadge},
				{ID: "high", Name: "CSA Mastery", Type: model.TypeCertification},
			}
			scored, err := engine.ScoreBadges(context.Background(), badges, profile, model.Context{})

			Convey("Then they are ordered by descending priority", func() {
				So(err, ShouldBeNil)
				So(scored[0].BadgeID, ShouldEqual, "high")
				So(scored[1].BadgeID, ShouldEqual, "low")
			})
		})

		Convey("When the badge slice is nil", func() {
			scored, err := engine.ScoreBadges(context.Background(), nil, profile, model.Context{})

			Convey("Then it reports an input error", func() {
				So(err, ShouldWrap, scoring.ErrInvalidInput)
				So(scored, ShouldBeNil)
			})
		})

		Convey("When the profile is missing", func() {
			scored, err := engine.ScoreBadges(context.Background(), []model.Achievement{}, nil, model.Context{})

			Convey("Then it reports an input error", func() {
				So(err, ShouldWrap, scoring.ErrInvalidInput)
				So(scored, ShouldBeNil)
			})
		})
	})
}

func TestEngine_AudienceBoosts(t *testing.T) {
	Convey("Given the audience weighting table", t, func() {
		engine := newTestEngine()
		profile := &model.UserProfile{UserID: "u1"}

		score := func(badge model.Achievement, audience model.Audience) int {
			scored, err := engine.ScoreBadges(context.Background(), []model.Achievement{badge}, profile, model.Context{TargetAudience: audience})
			So(err, ShouldBeNil)
			return scored[0].PriorityScore
		}

		Convey("IT recruiters boost CIS-named badges by 20", func() {
			got := score(model.Achievement{Name: "CIS - ITSM", Type: model.TypeBadge}, model.AudienceITRecruiters)
			So(got, ShouldEqual, 50+20)
		})

		Convey("The veteran community boosts leadership descriptions by 15", func() {
			got := score(model.Achievement{Name: "Mentor Award", Type: model.TypeBadge, Description: "Recognized Leadership in mentoring"}, model.AudienceVeterans)
			So(got, ShouldEqual, 50+15)
		})

		Convey("Platform professionals boost platform-issued badges by 25 on top of issuer relevance", func() {
			got := score(model.Achievement{Name: "Flow Design", Type: model.TypeBadge, Issuer: "ServiceNow University"}, model.AudienceProfessionals)
			So(got, ShouldEqual, 50+25+15)
		})

		Convey("An unrecognized audience contributes nothing", func() {
			got := score(model.Achievement{Name: "CSA", Type: model.TypeBadge}, model.Audience("stakeholders"))
			So(got, ShouldEqual, 50+25)
		})

		Convey("A matching name without the target audience set contributes nothing", func() {
			scored, err := engine.ScoreBadges(context.Background(), []model.Achievement{{Name: "CIS - Discovery", Type: model.TypeBadge}}, profile, model.Context{})
			So(err, ShouldBeNil)
			So(scored[0].PriorityScore, ShouldEqual, 50)
		})
	})
}

func TestEngine_Predictions(t *testing.T) {
	Convey("Given engagement prediction bounds", t, func() {
		engine := newTestEngine()
		profile := &model.UserProfile{UserID: "u1"}

		Convey("A maximally boosted badge stays within the ceiling", func() {
			scored, err := engine.ScoreBadges(context.Background(), []model.Achievement{{
				Name:       "CSA Platform Mastery",
				Type:       model.TypeCertification,
				Issuer:     "ServiceNow",
				DateEarned: earnedDaysAgo(1),
			}}, profile, model.Context{TargetAudience: model.AudienceProfessionals})
			So(err, ShouldBeNil)
			So(scored[0].EngagementPrediction, ShouldEqual, 0.95)
		})

		Convey("A plain badge sits at the base estimate", func() {
			scored, err := engine.ScoreBadges(context.Background(), []model.Achievement{{Name: "Plain", Type: model.TypeBadge}}, profile, model.Context{})
			So(err, ShouldBeNil)
			So(scored[0].EngagementPrediction, ShouldAlmostEqual, 0.6, 1e-9)
			So(scored[0].DisplayWeight, ShouldEqual, "low")
		})
	})
}
