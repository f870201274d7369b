package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/swashington/snas/internal/adapters/repository"
)

// Header columns required in every CSV import payload. Remaining record
// fields are optional in the file and caught by per-record validation.
var requiredHeaders = []string{"name", "type", "issuer"}

// exportHeaders is the column order of CSV exports.
var exportHeaders = []string{"name", "type", "issuer", "description", "category", "date_earned", "active", "id"}

// ParseCSV reads a header-mapped CSV payload into import records. Header
// names are matched case-insensitively with punctuation collapsed to
// underscores, so "Date Earned" binds to date_earned. Quoted fields and
// embedded commas follow standard CSV rules.
func ParseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrBadCSV, err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[normalizeHeader(h)] = i
	}
	for _, h := range requiredHeaders {
		if _, ok := columns[h]; !ok {
			return nil, fmt.Errorf("%w: missing required header %q", ErrBadCSV, h)
		}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadCSV, len(records)+2, err)
		}
		records = append(records, Record{
			Name:        cell(row, columns, "name"),
			Type:        cell(row, columns, "type"),
			Issuer:      cell(row, columns, "issuer"),
			Description: cell(row, columns, "description"),
			Category:    cell(row, columns, "category"),
			DateEarned:  cell(row, columns, "date_earned"),
		})
	}
	return records, nil
}

// ExportCSV renders the stored records matching the filter as CSV,
// ordered by earned date then name for a stable export.
func (l *Loader) ExportCSV(ctx context.Context, f repository.Filter) (string, error) {
	records, err := l.store.List(ctx, f)
	if err != nil {
		return "", fmt.Errorf("listing records: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].DateEarned != records[j].DateEarned {
			return records[i].DateEarned < records[j].DateEarned
		}
		return records[i].Name < records[j].Name
	})

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(exportHeaders); err != nil {
		return "", fmt.Errorf("writing header: %w", err)
	}
	for _, a := range records {
		row := []string{
			a.Name,
			string(a.Type),
			a.Issuer,
			a.Description,
			a.Category,
			a.DateEarned,
			strconv.FormatBool(a.Active),
			a.ID,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing row for %q: %w", a.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing export: %w", err)
	}
	return b.String(), nil
}

// normalizeHeader lowercases a header cell and collapses every
// non-alphanumeric run to a single underscore.
func normalizeHeader(h string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(h)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

func cell(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
