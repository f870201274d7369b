package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/swashington/snas/internal/adapters/http/api"
	"github.com/swashington/snas/internal/adapters/repository"
	service "github.com/swashington/snas/internal/app"
	"github.com/swashington/snas/internal/domain/content"
	"github.com/swashington/snas/internal/domain/model"
	"github.com/swashington/snas/internal/domain/scoring"
	"github.com/swashington/snas/internal/loader"
	. "github.com/smartystreets/goconvey/convey"
)

// mockService implements the Dependencies interface with canned results.
type mockService struct {
	prioritizeResult service.PrioritizeResult
	prioritizeErr    error

	suggestions content.Suggestions
	badge       model.Achievement
	suggestErr  error

	listRecords []model.Achievement
	listErr     error

	upsertID      string
	upsertCreated bool
	upsertErr     error
	upserted      []model.Achievement

	importResult loader.Result
	importErr    error
	imported     []loader.Record
	csvPayloads  []string

	backfillResult loader.BackfillResult
	cleanupResult  loader.CleanupResult
	exportPayload  string

	statistics service.Statistics
	statsErr   error
}

func (m *mockService) Prioritize(ctx context.Context, badges []model.Achievement, profile *model.UserProfile, sctx model.Context) (service.PrioritizeResult, error) {
	if m.prioritizeErr != nil {
		return service.PrioritizeResult{}, m.prioritizeErr
	}
	return m.prioritizeResult, nil
}

func (m *mockService) SuggestContent(ctx context.Context, badgeID string, contentType model.ContentType, audience model.Audience) (content.Suggestions, model.Achievement, error) {
	if m.suggestErr != nil {
		return content.Suggestions{}, model.Achievement{}, m.suggestErr
	}
	return m.suggestions, m.badge, nil
}

func (m *mockService) ListBadges(ctx context.Context, f repository.Filter, limit, offset int) ([]model.Achievement, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	return m.listRecords, len(m.listRecords), nil
}

func (m *mockService) UpsertBadge(ctx context.Context, a model.Achievement) (string, bool, error) {
	if m.upsertErr != nil {
		return "", false, m.upsertErr
	}
	m.upserted = append(m.upserted, a)
	return m.upsertID, m.upsertCreated, nil
}

func (m *mockService) Import(ctx context.Context, records []loader.Record, opts loader.Options) (loader.Result, error) {
	if m.importErr != nil {
		return loader.Result{}, m.importErr
	}
	m.imported = append(m.imported, records...)
	return m.importResult, nil
}

func (m *mockService) ImportCSV(ctx context.Context, payload io.Reader, opts loader.Options) (loader.Result, error) {
	if m.importErr != nil {
		return loader.Result{}, m.importErr
	}
	raw, _ := io.ReadAll(payload)
	m.csvPayloads = append(m.csvPayloads, string(raw))
	return m.importResult, nil
}

func (m *mockService) Backfill(ctx context.Context) (loader.BackfillResult, error) {
	return m.backfillResult, nil
}

func (m *mockService) Cleanup(ctx context.Context) (loader.CleanupResult, error) {
	return m.cleanupResult, nil
}

func (m *mockService) ExportCSV(ctx context.Context, f repository.Filter) (string, error) {
	return m.exportPayload, nil
}

func (m *mockService) Statistics(ctx context.Context) (service.Statistics, error) {
	if m.statsErr != nil {
		return service.Statistics{}, m.statsErr
	}
	return m.statistics, nil
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newMux(deps *mockService) *http.ServeMux {
	server := api.NewServer(deps, &mockStatsProvider{stats: map[string]interface{}{"started": true}})
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

func TestServer_Register(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux := newMux(&mockService{})

		Convey("Then the health endpoint serves the metrics registry", func() {
			req := httptest.NewRequest("GET", "/healthz", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Then the stats endpoint is accessible", func() {
			req := httptest.NewRequest("GET", "/stats", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)

			var stats map[string]interface{}
			So(json.NewDecoder(w.Body).Decode(&stats), ShouldBeNil)
			So(stats["started"], ShouldEqual, true)
		})

		Convey("Then unknown paths fall through to 404", func() {
			req := httptest.NewRequest("GET", "/unknown", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestPrioritizeHandler(t *testing.T) {
	Convey("Given a prioritization handler", t, func() {
		badge := model.Achievement{ID: "b1", Name: "CSA", Type: model.TypeCertification, Issuer: "ServiceNow"}
		deps := &mockService{
			prioritizeResult: service.PrioritizeResult{
				Badges: []model.ScoredAchievement{{
					BadgeID:              "b1",
					Badge:                badge,
					PriorityScore:        160,
					Reasoning:            []string{"CSA certification boost applied"},
					DisplayWeight:        "high",
					EngagementPrediction: 0.9,
				}},
				ProcessingTime: 12 * time.Millisecond,
				SLACompliant:   true,
			},
		}
		mux := newMux(deps)

		Convey("When posting a valid request", func() {
			body := `{
				"badges": [{"id": "b1", "name": "CSA", "type": "certification", "issuer": "ServiceNow"}],
				"user_profile": {"user_id": "u1", "veteran": true},
				"context": {"target_audience": "it_recruiters", "include_reasoning": true}
			}`
			req := httptest.NewRequest("POST", "/api/v1/prioritize-badges", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the scored badges come back with metadata", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var resp map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
				So(resp["success"], ShouldEqual, true)

				badges := resp["badges"].([]interface{})
				So(badges, ShouldHaveLength, 1)
				first := badges[0].(map[string]interface{})
				So(first["priority_score"], ShouldEqual, 160)
				So(first["display_weight"], ShouldEqual, "high")

				meta := resp["metadata"].(map[string]interface{})
				So(meta["total_badges"], ShouldEqual, 1)
				So(meta["algorithm"], ShouldEqual, "context_aware_veteran_focused_v1")
				So(meta["sla_compliant"], ShouldEqual, true)
			})
		})

		Convey("When the request has no badges", func() {
			req := httptest.NewRequest("POST", "/api/v1/prioritize-badges", strings.NewReader(`{"badges": []}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the request is rejected with the failure envelope", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var resp map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
				So(resp["success"], ShouldEqual, false)
				So(resp["status_code"], ShouldEqual, http.StatusBadRequest)
				So(resp["error"], ShouldContainSubstring, "INVALID_REQUEST")
				So(resp["timestamp"], ShouldNotBeEmpty)
			})
		})

		Convey("When the request carries unknown keys", func() {
			body := `{"badges": [{"name": "CSA"}], "unexpected": 1}`
			req := httptest.NewRequest("POST", "/api/v1/prioritize-badges", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the request is rejected rather than silently ignored", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the engine rejects the input", func() {
			deps.prioritizeErr = scoring.ErrInvalidInput
			body := `{"badges": [{"name": "CSA"}]}`
			req := httptest.NewRequest("POST", "/api/v1/prioritize-badges", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it maps to a 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var resp map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
				So(resp["error"], ShouldContainSubstring, "INVALID_INPUT")
			})
		})

		Convey("When using the wrong method", func() {
			req := httptest.NewRequest("GET", "/api/v1/prioritize-badges", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestContentHandler(t *testing.T) {
	Convey("Given a content suggestion handler", t, func() {
		deps := &mockService{
			suggestions: content.Suggestions{
				Suggestions: []model.ContentSuggestion{{
					Content:        "Proud to share my CSA certification!",
					Confidence:     0.85,
					VeteranAligned: true,
					Style:          "professional_enthusiasm",
				}},
				APISource:      content.SourceFallback,
				ProcessingTime: 3 * time.Millisecond,
				SLACompliant:   true,
			},
			badge: model.Achievement{ID: "b1", Name: "CSA"},
		}
		mux := newMux(deps)

		Convey("When requesting suggestions for a stored badge", func() {
			req := httptest.NewRequest("GET", "/api/v1/content-suggestions?badge_id=b1&content_type=linkedin_post&audience=veteran_community", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the suggestions render with provenance", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var resp map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
				So(resp["success"], ShouldEqual, true)
				So(resp["badge_id"], ShouldEqual, "b1")
				So(resp["api_source"], ShouldEqual, content.SourceFallback)
				So(resp["suggestions"].([]interface{}), ShouldHaveLength, 1)
			})
		})

		Convey("When badge_id is missing", func() {
			req := httptest.NewRequest("GET", "/api/v1/content-suggestions", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the request is rejected", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var resp map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
				So(resp["error"], ShouldContainSubstring, "MISSING_BADGE_ID")
			})
		})

		Convey("When the badge does not exist", func() {
			deps.suggestErr = repository.ErrNotFound
			req := httptest.NewRequest("GET", "/api/v1/content-suggestions?badge_id=missing", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it maps to RECORD_NOT_FOUND", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)

				var resp map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
				So(resp["success"], ShouldEqual, false)
				So(resp["error"], ShouldContainSubstring, "RECORD_NOT_FOUND")
			})
		})

		Convey("When the content type is unsupported", func() {
			deps.suggestErr = content.ErrUnsupportedContentType
			req := httptest.NewRequest("GET", "/api/v1/content-suggestions?badge_id=b1&content_type=tweet", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it maps to a 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestBadgesHandler(t *testing.T) {
	Convey("Given a badges handler", t, func() {
		deps := &mockService{
			listRecords: []model.Achievement{
				{ID: "b1", Name: "CSA", Type: model.TypeCertification, Issuer: "ServiceNow", Active: true},
				{ID: "b2", Name: "Mentor", Type: model.TypeAchievement, Issuer: "VetsInTech", Active: true},
			},
			upsertID:      "b3",
			upsertCreated: true,
		}
		mux := newMux(deps)

		Convey("When listing badges", func() {
			req := httptest.NewRequest("GET", "/api/v1/badges?limit=10", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the stored records render as views", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var resp map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
				So(resp["success"], ShouldEqual, true)
				So(resp["total"], ShouldEqual, 2)
				badges := resp["badges"].([]interface{})
				So(badges, ShouldHaveLength, 2)
				So(badges[0].(map[string]interface{})["name"], ShouldEqual, "CSA")
			})
		})

		Convey("When filtering on an unknown type", func() {
			req := httptest.NewRequest("GET", "/api/v1/badges?type=medal", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the limit is not a number", func() {
			req := httptest.NewRequest("GET", "/api/v1/badges?limit=ten", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When upserting a new badge", func() {
			body := `{"name": "New Badge", "type": "badge", "issuer": "ServiceNow", "date_earned": "2024-01-01"}`
			req := httptest.NewRequest("POST", "/api/v1/badges", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then a created response comes back", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)

				var resp map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
				So(resp["success"], ShouldEqual, true)
				So(resp["badge_id"], ShouldEqual, "b3")
				So(resp["created"], ShouldEqual, true)
				So(deps.upserted, ShouldHaveLength, 1)
			})
		})

		Convey("When upserting an existing badge", func() {
			deps.upsertCreated = false
			body := `{"name": "CSA", "type": "certification", "issuer": "ServiceNow"}`
			req := httptest.NewRequest("POST", "/api/v1/badges", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("When the upsert body misses required fields", func() {
			req := httptest.NewRequest("POST", "/api/v1/badges", strings.NewReader(`{"name": "x"}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestImportHandler(t *testing.T) {
	Convey("Given an import handler", t, func() {
		deps := &mockService{
			importResult: loader.Result{
				TotalRecords:      2,
				SuccessfulImports: 2,
			},
		}
		mux := newMux(deps)

		Convey("When posting inline JSON records", func() {
			body := `{
				"records": [
					{"name": "A", "type": "badge", "issuer": "X", "description": "d", "category": "c", "date_earned": "2024-01-01"},
					{"name": "B", "type": "badge", "issuer": "X", "description": "d", "category": "c", "date_earned": "2024-01-02"}
				],
				"options": {"clear_existing": false}
			}`
			req := httptest.NewRequest("POST", "/api/v1/import", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the loader result renders with the envelope", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var resp map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
				So(resp["success"], ShouldEqual, true)
				So(resp["total_records"], ShouldEqual, 2)
				So(resp["successful_imports"], ShouldEqual, 2)
				So(deps.imported, ShouldHaveLength, 2)
			})
		})

		Convey("When posting a CSV payload", func() {
			body := "name,type,issuer\nA,badge,X\n"
			req := httptest.NewRequest("POST", "/api/v1/import?validate_only=true", strings.NewReader(body))
			req.Header.Set("Content-Type", "text/csv")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the CSV path is taken", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.csvPayloads, ShouldHaveLength, 1)
				So(deps.csvPayloads[0], ShouldContainSubstring, "name,type,issuer")
			})
		})

		Convey("When the payload has no records", func() {
			deps.importErr = loader.ErrNoRecords
			req := httptest.NewRequest("POST", "/api/v1/import", strings.NewReader(`{"records": []}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it maps to a 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var resp map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
				So(resp["error"], ShouldContainSubstring, "INVALID_IMPORT_PAYLOAD")
			})
		})

		Convey("When the body is not JSON", func() {
			req := httptest.NewRequest("POST", "/api/v1/import", strings.NewReader(`{broken`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestStatisticsHandler(t *testing.T) {
	Convey("Given a statistics handler", t, func() {
		deps := &mockService{
			statistics: service.Statistics{
				TotalBadges:    28,
				Certifications: 8,
				Achievements:   20,
				Categories:     map[string]int{"Innovation": 3},
				Issuers:        map[string]int{"ServiceNow": 5},
			},
		}
		mux := newMux(deps)

		Convey("When requesting portfolio statistics", func() {
			req := httptest.NewRequest("GET", "/api/v1/statistics", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the aggregate counts render", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var resp map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
				So(resp["success"], ShouldEqual, true)
				stats := resp["statistics"].(map[string]interface{})
				So(stats["total_badges"], ShouldEqual, 28)
				So(stats["certifications"], ShouldEqual, 8)
			})
		})
	})
}

func TestMaintenanceHandler(t *testing.T) {
	Convey("Given a maintenance handler", t, func() {
		deps := &mockService{
			backfillResult: loader.BackfillResult{Examined: 10, Updated: 3},
			cleanupResult:  loader.CleanupResult{Processed: 10, Cleaned: 2},
			exportPayload:  "name,type,issuer\nCSA,certification,ServiceNow\n",
		}
		mux := newMux(deps)

		Convey("When running a backfill", func() {
			req := httptest.NewRequest("POST", "/api/v1/maintenance/backfill", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			var resp map[string]interface{}
			So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
			So(resp["updated_records"], ShouldEqual, 3)
		})

		Convey("When running a cleanup", func() {
			req := httptest.NewRequest("POST", "/api/v1/maintenance/cleanup", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			var resp map[string]interface{}
			So(json.NewDecoder(w.Body).Decode(&resp), ShouldBeNil)
			So(resp["cleaned"], ShouldEqual, 2)
		})

		Convey("When exporting as CSV", func() {
			req := httptest.NewRequest("GET", "/api/v1/export", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/csv")
			So(w.Body.String(), ShouldContainSubstring, "CSA,certification,ServiceNow")
		})

		Convey("When using the wrong method on maintenance routes", func() {
			req := httptest.NewRequest("GET", "/api/v1/maintenance/backfill", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}
