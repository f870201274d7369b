// Package loader validates, transforms, and bulk-applies scoring to
// externally supplied achievement records. It also carries the data
// maintenance passes: backfilling legacy records and normalizing field
// noise accumulated from hand-entered data.
package loader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/swashington/snas/internal/adapters/repository"
	"github.com/swashington/snas/internal/domain/model"
)

// DefaultBatchSize bounds per-call resource use during imports. Batch
// boundaries carry no atomicity: failures are recorded per record.
const DefaultBatchSize = 50

// Record is one inbound achievement row before validation. All fields
// arrive as strings whether the origin was CSV or an inline JSON array.
type Record struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=certification badge achievement"`
	Issuer      string `json:"issuer" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	DateEarned  string `json:"date_earned" validate:"required,datetime=2006-01-02"`
}

// Options control one import run.
type Options struct {
	// ClearExisting deletes every stored record before importing.
	ClearExisting bool `json:"clear_existing"`
	// ValidateOnly runs the full pipeline without writing, returning the
	// would-be transformed records for dry-run verification.
	ValidateOnly bool `json:"validate_only"`
	// BatchSize overrides DefaultBatchSize when positive.
	BatchSize int `json:"batch_size"`
}

// Result aggregates one import run.
type Result struct {
	TotalRecords      int      `json:"total_records"`
	SuccessfulImports int      `json:"successful_imports"`
	FailedImports     int      `json:"failed_imports"`
	DuplicatesSkipped int      `json:"duplicates_skipped"`
	Errors            []string `json:"errors"`
	ProcessingTimeMS  int64    `json:"processing_time_ms"`
	ValidationOnly    bool     `json:"validation_only"`

	// Processed holds the transformed records that were written, or in
	// validate-only mode, the records that would have been written.
	Processed []model.Achievement `json:"-"`
}

// BackfillResult summarizes a validate-and-update pass.
type BackfillResult struct {
	Examined int      `json:"examined"`
	Updated  int      `json:"updated_records"`
	Errors   []string `json:"errors"`
}

// CleanupResult summarizes a data-normalization pass.
type CleanupResult struct {
	Processed int      `json:"processed"`
	Cleaned   int      `json:"cleaned"`
	Errors    []string `json:"errors"`
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithClock overrides the time source for recency scoring.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		if now != nil {
			l.now = now
		}
	}
}

// WithBatchSize sets the default batch size for runs that do not specify
// one.
func WithBatchSize(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.batchSize = n
		}
	}
}

// Loader imports achievement records into a store.
type Loader struct {
	store     repository.Store
	validate  *validator.Validate
	now       func() time.Time
	batchSize int
}

// New creates a Loader writing to the given store.
func New(store repository.Store, opts ...Option) *Loader {
	l := &Loader{
		store:     store,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		now:       time.Now,
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Import runs the batch pipeline: validate each record, skip duplicates
// on (name, issuer), transform, score, and insert. Failing records are
// skipped with an indexed error; processing always continues. Only an
// empty payload or a failed clear aborts the run.
func (l *Loader) Import(ctx context.Context, records []Record, opts Options) (Result, error) {
	start := l.now()

	if len(records) == 0 {
		return Result{}, ErrNoRecords
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = l.batchSize
	}

	if opts.ClearExisting && !opts.ValidateOnly {
		if _, err := l.store.DeleteAll(ctx, repository.Filter{}); err != nil {
			return Result{}, fmt.Errorf("clearing existing records: %w", err)
		}
	}

	res := Result{
		TotalRecords:   len(records),
		ValidationOnly: opts.ValidateOnly,
	}

	for offset := 0; offset < len(records); offset += batchSize {
		end := offset + batchSize
		if end > len(records) {
			end = len(records)
		}
		l.processBatch(ctx, records[offset:end], offset, opts.ValidateOnly, &res)
	}

	res.ProcessingTimeMS = l.now().Sub(start).Milliseconds()
	return res, nil
}

// processBatch handles one slice of records. base is the absolute offset
// of the slice, used for 1-based record numbering in error messages.
func (l *Loader) processBatch(ctx context.Context, batch []Record, base int, validateOnly bool, res *Result) {
	for i, rec := range batch {
		number := base + i + 1

		rec = normalizeRecord(rec)
		if msgs := l.validateRecord(rec); len(msgs) > 0 {
			res.FailedImports++
			res.Errors = append(res.Errors, fmt.Sprintf("record %d: %s", number, strings.Join(msgs, "; ")))
			continue
		}

		transformed := l.transform(rec)

		if validateOnly {
			res.SuccessfulImports++
			res.Processed = append(res.Processed, transformed)
			continue
		}

		if _, err := l.store.FindByNameIssuer(ctx, transformed.Name, transformed.Issuer); err == nil {
			res.DuplicatesSkipped++
			continue
		}

		id, err := l.store.Insert(ctx, transformed)
		if err != nil {
			res.FailedImports++
			res.Errors = append(res.Errors, fmt.Sprintf("record %d: storing %q: %v", number, transformed.Name, err))
			continue
		}
		transformed.ID = id
		res.SuccessfulImports++
		res.Processed = append(res.Processed, transformed)
	}
}

// validateRecord returns human-readable validation messages, empty when
// the record passes.
func (l *Loader) validateRecord(rec Record) []string {
	err := l.validate.Struct(rec)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldName(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, "missing required field: "+field)
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("invalid %s %q, must be one of: certification, badge, achievement", field, fe.Value()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("invalid %s %q, expected YYYY-MM-DD", field, fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("invalid %s %q", field, fe.Value()))
		}
	}
	return msgs
}

// transform builds the stored record from a validated row: scored,
// activated, and with the issuer canonicalized.
func (l *Loader) transform(rec Record) model.Achievement {
	a := model.Achievement{
		Name:        rec.Name,
		Type:        model.Type(rec.Type),
		Issuer:      NormalizeIssuer(rec.Issuer),
		Description: rec.Description,
		Category:    rec.Category,
		DateEarned:  rec.DateEarned,
		Active:      true,
	}
	a.PriorityScore = ImportScore(a, l.now())
	return a
}

// ValidateAndBackfill repairs legacy records in place: anything stored
// without a priority score is rescored with the import formula and
// re-activated. The import path always sets both fields, so a zero score
// marks a record that predates the loader.
func (l *Loader) ValidateAndBackfill(ctx context.Context) (BackfillResult, error) {
	all, err := l.store.List(ctx, repository.Filter{})
	if err != nil {
		return BackfillResult{}, fmt.Errorf("listing records: %w", err)
	}

	res := BackfillResult{Examined: len(all)}
	for _, a := range all {
		if a.PriorityScore != 0 {
			continue
		}
		a.PriorityScore = ImportScore(a, l.now())
		a.Active = true
		if err := l.store.Update(ctx, a); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("updating %q: %v", a.Name, err))
			continue
		}
		res.Updated++
	}
	return res, nil
}

// Cleanup normalizes stored field noise: collapsed whitespace in text
// fields, canonical issuer spelling, and unparseable earned dates reset
// to today.
func (l *Loader) Cleanup(ctx context.Context) (CleanupResult, error) {
	all, err := l.store.List(ctx, repository.Filter{})
	if err != nil {
		return CleanupResult{}, fmt.Errorf("listing records: %w", err)
	}

	res := CleanupResult{Processed: len(all)}
	for _, a := range all {
		cleaned := a
		cleaned.Name = normalizeText(a.Name)
		cleaned.Description = normalizeText(a.Description)
		cleaned.Category = normalizeText(a.Category)
		cleaned.Issuer = NormalizeIssuer(a.Issuer)
		if _, ok := cleaned.EarnedTime(); !ok && strings.TrimSpace(cleaned.DateEarned) != "" {
			cleaned.DateEarned = l.now().Format(model.DateLayout)
		}

		if cleaned == a {
			continue
		}
		if err := l.store.Update(ctx, cleaned); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("updating %q: %v", a.Name, err))
			continue
		}
		res.Cleaned++
	}
	return res, nil
}

// normalizeRecord trims every field and lowercases the type so that
// validation and scoring see canonical input.
func normalizeRecord(rec Record) Record {
	return Record{
		Name:        strings.TrimSpace(rec.Name),
		Type:        strings.ToLower(strings.TrimSpace(rec.Type)),
		Issuer:      strings.TrimSpace(rec.Issuer),
		Description: strings.TrimSpace(rec.Description),
		Category:    strings.TrimSpace(rec.Category),
		DateEarned:  strings.TrimSpace(rec.DateEarned),
	}
}

// NormalizeIssuer canonicalizes issuer spelling: any variant containing
// the platform name collapses to its canonical form.
func NormalizeIssuer(issuer string) string {
	trimmed := strings.TrimSpace(issuer)
	if strings.Contains(strings.ToLower(trimmed), "servicenow") {
		return model.PlatformIssuer
	}
	return trimmed
}

// normalizeText trims and collapses internal whitespace runs.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// fieldName maps a struct field name to its wire name for error text.
func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Type":
		return "type"
	case "Issuer":
		return "issuer"
	case "Description":
		return "description"
	case "Category":
		return "category"
	case "DateEarned":
		return "date_earned"
	}
	return structField
}
