package validator

import (
	"fmt"
	"strings"
	"time"
)

// Required columns for utility data, in canonical form.
var requiredColumns = []string{"Date", "kWh", "Therms", "Demand"}

// Numeric columns validated for content.
var numericColumns = []string{"kWh", "Therms", "Demand"}

const dateColumn = "Date"

// cellState is the tri-state result of numeric coercion. Blank cells are
// deferred to the missing-data rule; malformed cells are reported during
// coercion.
type cellState int

const (
	cellValue cellState = iota
	cellBlank
	cellMalformed
)

type numCell struct {
	state cellState
	value float64
}

type dateCell struct {
	ok   bool
	when time.Time
}

// dataRow is one surviving data row. Ordinal is the original 1-based position
// among data rows (header excluded), counting removed empty rows.
type dataRow struct {
	ordinal int
	fields  []string
}

// table holds the loaded rows plus the results of schema resolution and type
// coercion. Columns absent from the input map to -1 in cols.
type table struct {
	headers []string
	rows    []dataRow
	cols    map[string]int
	dates   []dateCell
	nums    map[string][]numCell
}

// loadTable parses the full input with the detected delimiter and strips
// fully empty rows, returning the count removed.
func loadTable(data []byte, delim rune) (*table, int, error) {
	records, err := newCSVReader(data, delim).ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("parsing table: %w", err)
	}
	if len(records) == 0 {
		return nil, 0, fmt.Errorf("input contains no header row")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	t := &table{
		headers: headers,
		cols:    make(map[string]int),
		nums:    make(map[string][]numCell),
	}

	removed := 0
	for i, rec := range records[1:] {
		if isEmptyRecord(rec) {
			removed++
			continue
		}
		t.rows = append(t.rows, dataRow{ordinal: i + 1, fields: rec})
	}

	return t, removed, nil
}

func isEmptyRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// field returns the trimmed value of the given column for a row, tolerating
// ragged rows shorter than the header.
func (t *table) field(row dataRow, col string) string {
	idx, ok := t.cols[col]
	if !ok || idx < 0 || idx >= len(row.fields) {
		return ""
	}
	return strings.TrimSpace(row.fields[idx])
}

// hasColumn reports whether a required column was resolved in the header.
func (t *table) hasColumn(col string) bool {
	idx, ok := t.cols[col]
	return ok && idx >= 0
}

// allColumnsResolved reports whether every required column was found.
// Duplicate identity is defined over all four columns, so both the duplicate
// rule and the row-count deduction require this.
func (t *table) allColumnsResolved() bool {
	for _, col := range requiredColumns {
		if !t.hasColumn(col) {
			return false
		}
	}
	return true
}

// resolveColumns matches required columns against the header,
// case-insensitively after trimming, and returns the missing ones.
func (t *table) resolveColumns() []string {
	var missing []string
	for _, col := range requiredColumns {
		t.cols[col] = -1
		for i, h := range t.headers {
			if strings.EqualFold(h, col) {
				t.cols[col] = i
				break
			}
		}
		if t.cols[col] < 0 {
			missing = append(missing, col)
		}
	}
	return missing
}

// duplicateGroups returns the ordinals of rows that are identical across all
// four required columns, grouped by value, in first-occurrence order. Only
// meaningful when every required column resolved.
func (t *table) duplicateGroups() [][]int {
	seen := make(map[string][]int)
	var order []string

	for _, row := range t.rows {
		parts := make([]string, len(requiredColumns))
		for i, col := range requiredColumns {
			parts[i] = t.field(row, col)
		}
		key := strings.Join(parts, "\x1f")
		if _, ok := seen[key]; !ok {
			order = append(order, key)
		}
		seen[key] = append(seen[key], row.ordinal)
	}

	var groups [][]int
	for _, key := range order {
		if len(seen[key]) > 1 {
			groups = append(groups, seen[key])
		}
	}
	return groups
}
