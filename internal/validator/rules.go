package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/urbancomply/urbancomply/pkg/models"
)

// A rule inspects the coerced table and reports issues. Rules are pure: they
// mutate nothing and receive configuration explicitly, so each is testable in
// isolation. All rules run to completion regardless of earlier findings;
// order affects message ordering only.
type rule func(*table, Options) []models.Issue

var rules = []rule{
	checkMissingData,
	checkMissingMonths,
	checkDuplicateRows,
	checkNegativeValues,
	checkExtremeValues,
	checkUnitMismatches,
}

// checkMissingData flags numeric cells still blank after coercion, one issue
// per (row, column). Malformed cells were already reported by coercion and
// are not double-counted here.
func checkMissingData(t *table, _ Options) []models.Issue {
	var issues []models.Issue
	for _, col := range numericColumns {
		cells, ok := t.nums[col]
		if !ok {
			continue
		}
		for i, cell := range cells {
			if cell.state != cellBlank {
				continue
			}
			issues = append(issues, models.Issue{
				Kind:    models.MissingData,
				Message: fmt.Sprintf("Column '%s' has missing value at row %d", col, t.rows[i].ordinal),
				Row:     intPtr(t.rows[i].ordinal),
				Column:  strPtr(col),
			})
		}
	}
	return issues
}

// checkMissingMonths sorts the successfully parsed dates and flags every gap
// of one or more calendar months between consecutive readings. Rows whose
// date failed to parse were reported by coercion and are excluded here.
func checkMissingMonths(t *table, _ Options) []models.Issue {
	if t.dates == nil {
		return nil
	}

	// Collapse to distinct month indices (year*12 + month).
	seen := make(map[int]bool)
	var months []int
	for _, d := range t.dates {
		if !d.ok {
			continue
		}
		m := d.when.Year()*12 + int(d.when.Month()) - 1
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	if len(months) < 2 {
		return nil
	}
	sort.Ints(months)

	var issues []models.Issue
	for i := 1; i < len(months); i++ {
		gap := months[i] - months[i-1]
		if gap <= 1 {
			continue
		}
		var missing []string
		for m := months[i-1] + 1; m < months[i]; m++ {
			missing = append(missing, fmt.Sprintf("%04d-%02d", m/12, m%12+1))
		}
		issues = append(issues, models.Issue{
			Kind: models.MissingMonths,
			Message: fmt.Sprintf("Found %d missing month(s) in date sequence: %s",
				len(missing), strings.Join(missing, ", ")),
			Row:    nil,
			Column: strPtr(dateColumn),
			Count:  len(missing),
		})
	}
	return issues
}

// checkDuplicateRows flags rows identical across all four required columns,
// one issue per colliding group listing every ordinal involved. Skipped when
// any required column is missing, since identity is defined over all four.
func checkDuplicateRows(t *table, _ Options) []models.Issue {
	if !t.allColumnsResolved() {
		return nil
	}

	var issues []models.Issue
	for _, group := range t.duplicateGroups() {
		ordinals := make([]string, len(group))
		for i, ord := range group {
			ordinals[i] = fmt.Sprintf("%d", ord)
		}
		issues = append(issues, models.Issue{
			Kind: models.DuplicateRows,
			Message: fmt.Sprintf("Found %d duplicate rows with identical values: rows %s",
				len(group)-1, strings.Join(ordinals, ", ")),
			Row:    nil,
			Column: nil,
			Count:  len(group) - 1,
		})
	}
	return issues
}

// checkNegativeValues flags numeric values below the configured minimum,
// citing the exact row and column.
func checkNegativeValues(t *table, opts Options) []models.Issue {
	var issues []models.Issue
	for _, col := range numericColumns {
		cells, ok := t.nums[col]
		if !ok {
			continue
		}
		for i, cell := range cells {
			if cell.state != cellValue || cell.value >= opts.MinValue {
				continue
			}
			issues = append(issues, models.Issue{
				Kind: models.NegativeValues,
				Message: fmt.Sprintf("Column '%s' has negative value %g at row %d",
					col, cell.value, t.rows[i].ordinal),
				Row:       intPtr(t.rows[i].ordinal),
				Column:    strPtr(col),
				Value:     floatPtr(cell.value),
				Threshold: floatPtr(opts.MinValue),
			})
		}
	}
	return issues
}

// checkExtremeValues flags numeric values above the configured maximum.
// Advisory only: magnitude outliers are plausible, not invalid.
func checkExtremeValues(t *table, opts Options) []models.Issue {
	var issues []models.Issue
	for _, col := range numericColumns {
		cells, ok := t.nums[col]
		if !ok {
			continue
		}
		for i, cell := range cells {
			if cell.state != cellValue || cell.value <= opts.MaxValue {
				continue
			}
			issues = append(issues, models.Issue{
				Kind: models.ExtremeValues,
				Message: fmt.Sprintf("Column '%s' has extremely high value %g at row %d (>%g)",
					col, cell.value, t.rows[i].ordinal, opts.MaxValue),
				Row:       intPtr(t.rows[i].ordinal),
				Column:    strPtr(col),
				Value:     floatPtr(cell.value),
				Threshold: floatPtr(opts.MaxValue),
			})
		}
	}
	return issues
}

// checkUnitMismatches looks for values more than two orders of magnitude
// away from the column median. A small cluster of such outliers usually means
// part of the data arrived in different units (MWh vs kWh); flagged for human
// review, never rejected. The check stays quiet when the outliers are the
// majority, since then the "outliers" are probably the correct unit.
func checkUnitMismatches(t *table, _ Options) []models.Issue {
	var issues []models.Issue
	for _, col := range numericColumns {
		cells, ok := t.nums[col]
		if !ok {
			continue
		}

		var values []float64
		for _, cell := range cells {
			if cell.state == cellValue {
				values = append(values, cell.value)
			}
		}
		if len(values) < 2 {
			continue
		}

		med := median(values)
		if med <= 0 {
			continue
		}

		outliers := 0
		for _, v := range values {
			if v > med*100 || v < med/100 {
				outliers++
			}
		}
		if outliers == 0 || outliers*2 >= len(values) {
			continue
		}

		issues = append(issues, models.Issue{
			Kind: models.PotentialUnitMismatch,
			Message: fmt.Sprintf("Column '%s' may have unit mismatches - %d value(s) differ significantly from median %g",
				col, outliers, med),
			Row:    nil,
			Column: strPtr(col),
			Count:  outliers,
		})
	}
	return issues
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
