// Package seeder posts the bundled default achievement dataset to a
// running service instance.
package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/swashington/snas/internal/loader"
)

// Config holds configuration for a seeding run.
type Config struct {
	BaseURL       string        // Base URL of the service
	ClearExisting bool          // Delete stored records before importing
	ValidateOnly  bool          // Dry-run without writes
	Timeout       time.Duration // HTTP request timeout
	Verbose       bool          // Enable verbose logging
}

// importRequest mirrors the POST /api/v1/import request schema.
type importRequest struct {
	Records []loader.Record `json:"records"`
	Options loader.Options  `json:"options"`
}

// importResponse mirrors the import result envelope.
type importResponse struct {
	Success           bool     `json:"success"`
	TotalRecords      int      `json:"total_records"`
	SuccessfulImports int      `json:"successful_imports"`
	FailedImports     int      `json:"failed_imports"`
	DuplicatesSkipped int      `json:"duplicates_skipped"`
	Errors            []string `json:"errors"`
	ProcessingTimeMS  int64    `json:"processing_time_ms"`
	ValidationOnly    bool     `json:"validation_only"`
}

// statisticsResponse mirrors the GET /api/v1/statistics envelope.
type statisticsResponse struct {
	Success    bool `json:"success"`
	Statistics struct {
		TotalBadges      int `json:"total_badges"`
		Certifications   int `json:"certifications"`
		Achievements     int `json:"achievements"`
		ServiceNowBadges int `json:"servicenow_badges"`
		VeteranAligned   int `json:"veteran_aligned"`
	} `json:"statistics"`
}

// Run imports the default dataset and reports the resulting portfolio.
func Run(ctx context.Context, config *Config) error {
	records := loader.DefaultAchievements()
	log.Printf("seeding %d records to %s", len(records), config.BaseURL)

	client := newHTTPClient(config.Timeout)

	payload := importRequest{
		Records: records,
		Options: loader.Options{
			ClearExisting: config.ClearExisting,
			ValidateOnly:  config.ValidateOnly,
		},
	}

	var res importResponse
	if err := client.postJSON(ctx, config.BaseURL+"/api/v1/import", payload, &res); err != nil {
		return fmt.Errorf("import request failed: %w", err)
	}
	if !res.Success {
		return fmt.Errorf("import rejected by service")
	}

	log.Printf("import completed: %d imported, %d failed, %d duplicates in %dms",
		res.SuccessfulImports, res.FailedImports, res.DuplicatesSkipped, res.ProcessingTimeMS)
	if config.Verbose {
		for _, e := range res.Errors {
			log.Printf("  error: %s", e)
		}
	}
	if res.ValidationOnly {
		log.Printf("validation-only run; no records were written")
		return nil
	}

	var stats statisticsResponse
	if err := client.getJSON(ctx, config.BaseURL+"/api/v1/statistics", &stats); err != nil {
		return fmt.Errorf("statistics request failed: %w", err)
	}
	log.Printf("portfolio: %d badges (%d certifications, %d achievements, %d ServiceNow-issued, %d veteran-aligned)",
		stats.Statistics.TotalBadges, stats.Statistics.Certifications, stats.Statistics.Achievements,
		stats.Statistics.ServiceNowBadges, stats.Statistics.VeteranAligned)

	return nil
}
