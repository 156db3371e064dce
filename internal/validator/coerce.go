package validator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/urbancomply/urbancomply/pkg/models"
)

// Candidate date layouts tried during auto-detection, in priority order.
// ISO first, then common US forms.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"01-02-2006",
	"Jan 2, 2006",
}

// Rows sampled when auto-detecting the date layout.
const dateSampleSize = 20

// detectDateLayout picks the candidate layout matching the most sampled
// non-empty date cells, preferring earlier candidates on ties. Returns ""
// when no candidate matches anything.
func detectDateLayout(t *table) string {
	var sample []string
	for _, row := range t.rows {
		if raw := t.field(row, dateColumn); raw != "" {
			sample = append(sample, raw)
		}
		if len(sample) >= dateSampleSize {
			break
		}
	}
	if len(sample) == 0 {
		return ""
	}

	best := ""
	bestHits := 0
	for _, layout := range dateLayouts {
		hits := 0
		for _, raw := range sample {
			if _, err := time.Parse(layout, raw); err == nil {
				hits++
			}
		}
		if hits > bestHits {
			best = layout
			bestHits = hits
		}
	}

	return best
}

// coerceDates parses the Date column against the configured layout, or an
// auto-detected one, producing one InvalidDates error per unparseable row.
// Skipped entirely when the Date column is missing.
func coerceDates(t *table, opts Options) []models.Issue {
	if !t.hasColumn(dateColumn) {
		return nil
	}

	layout := opts.DateFormat
	if layout == "" {
		layout = detectDateLayout(t)
	}

	t.dates = make([]dateCell, len(t.rows))

	var issues []models.Issue
	for i, row := range t.rows {
		raw := t.field(row, dateColumn)

		var when time.Time
		var err error
		if layout == "" {
			err = fmt.Errorf("no recognized date format")
		} else {
			when, err = time.Parse(layout, raw)
		}

		if err != nil {
			issues = append(issues, models.Issue{
				Kind:    models.InvalidDates,
				Message: fmt.Sprintf("Row %d has invalid date entry %q", row.ordinal, raw),
				Row:     intPtr(row.ordinal),
				Column:  strPtr(dateColumn),
			})
			continue
		}
		t.dates[i] = dateCell{ok: true, when: when}
	}

	return issues
}

// coerceNumerics converts kWh/Therms/Demand cells to floats. Non-empty cells
// that fail to parse yield per-cell NonNumericValues errors; empty cells stay
// blank for the missing-data rule.
func coerceNumerics(t *table) []models.Issue {
	var issues []models.Issue

	for _, col := range numericColumns {
		if !t.hasColumn(col) {
			continue
		}

		cells := make([]numCell, len(t.rows))
		for i, row := range t.rows {
			raw := t.field(row, col)
			if raw == "" {
				cells[i] = numCell{state: cellBlank}
				continue
			}

			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				cells[i] = numCell{state: cellMalformed}
				issues = append(issues, models.Issue{
					Kind:    models.NonNumericValues,
					Message: fmt.Sprintf("Column '%s' has non-numeric value %q at row %d", col, raw, row.ordinal),
					Row:     intPtr(row.ordinal),
					Column:  strPtr(col),
				})
				continue
			}
			cells[i] = numCell{state: cellValue, value: v}
		}
		t.nums[col] = cells
	}

	return issues
}

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

func floatPtr(v float64) *float64 { return &v }
