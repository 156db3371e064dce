// Package validator checks monthly building utility data for LL84/33
// compliance. It runs a fixed pipeline over one tabular input — dialect
// detection, loading, schema checking, type coercion, and a closed set of
// data-quality rules — and produces a single pass/fail report. The package
// performs no I/O beyond reading the input; persistence and submission belong
// to callers.
package validator

import (
	"fmt"
	"os"
	"time"

	"github.com/urbancomply/urbancomply/pkg/models"
)

// Options configures a validation run. The zero value of MaxValue is not
// useful; construct with DefaultOptions and override as needed.
type Options struct {
	MinValue       float64 // values below this are NegativeValues errors
	MaxValue       float64 // values above this are ExtremeValues warnings
	DateFormat     string  // Go time layout; empty enables auto-detection
	DropDuplicates bool    // exclude duplicate rows from rows_processed
}

// DefaultOptions returns the standard thresholds for utility data.
func DefaultOptions() Options {
	return Options{
		MinValue: 0.0,
		MaxValue: 1e9,
	}
}

// Validator validates utility data files. It holds only configuration, so a
// single Validator may be used for independent runs.
type Validator struct {
	opts Options
}

// New creates a validator with the given options.
func New(opts Options) *Validator {
	return &Validator{opts: opts}
}

// ValidateFile runs the full pipeline against one input file. Every outcome
// is a well-formed report: unreadable or unparseable inputs short-circuit
// into a report holding that single error, since no table exists to run
// further rules against. All other findings are cumulative.
func (v *Validator) ValidateFile(path string) *models.Report {
	r := &run{opts: v.opts, input: path}
	return r.execute()
}

// run holds the mutable state of a single invocation, keeping Validator
// itself reentrant.
type run struct {
	opts     Options
	input    string
	errors   []models.Issue
	warnings []models.Issue
	rows     int
}

func (r *run) execute() *models.Report {
	data, err := os.ReadFile(r.input)
	if err != nil {
		if os.IsNotExist(err) {
			r.addIssue(models.Issue{
				Kind:    models.FileNotFound,
				Message: fmt.Sprintf("Input file not found: %s", r.input),
			})
		} else {
			r.addIssue(models.Issue{
				Kind:    models.InvalidFileFormat,
				Message: fmt.Sprintf("Failed to read input file: %v", err),
			})
		}
		return r.buildReport()
	}

	delim, err := detectDelimiter(data)
	if err != nil {
		r.addIssue(models.Issue{
			Kind:    models.InvalidFileFormat,
			Message: "Failed to load file with any standard delimiter",
		})
		return r.buildReport()
	}

	t, removed, err := loadTable(data, delim)
	if err != nil {
		r.addIssue(models.Issue{
			Kind:    models.InvalidFileFormat,
			Message: fmt.Sprintf("Failed to parse table: %v", err),
		})
		return r.buildReport()
	}
	if removed > 0 {
		r.addIssue(models.Issue{
			Kind:    models.EmptyRows,
			Message: fmt.Sprintf("Found %d completely empty rows - will be ignored", removed),
			Count:   removed,
		})
	}
	r.rows = len(t.rows)

	if missing := t.resolveColumns(); len(missing) > 0 {
		r.addIssue(models.Issue{
			Kind:    models.MissingColumns,
			Message: fmt.Sprintf("Missing required columns: %v", missing),
			Count:   len(missing),
		})
		// Keep going: rules depending on a missing column skip themselves,
		// so one run still surfaces every fixable problem.
	}

	for _, issue := range coerceDates(t, r.opts) {
		r.addIssue(issue)
	}
	for _, issue := range coerceNumerics(t) {
		r.addIssue(issue)
	}

	for _, check := range rules {
		for _, issue := range check(t, r.opts) {
			r.addIssue(issue)
		}
	}

	if r.opts.DropDuplicates && t.allColumnsResolved() {
		for _, group := range t.duplicateGroups() {
			r.rows -= len(group) - 1
		}
	}

	return r.buildReport()
}

func (r *run) addIssue(issue models.Issue) {
	if issue.Kind.Severity() == models.SeverityError {
		r.errors = append(r.errors, issue)
	} else {
		r.warnings = append(r.warnings, issue)
	}
}

func (r *run) buildReport() *models.Report {
	passed := len(r.errors) == 0
	status := models.StatusFail
	if passed {
		status = models.StatusPass
	}

	errs := r.errors
	if errs == nil {
		errs = []models.Issue{}
	}
	warns := r.warnings
	if warns == nil {
		warns = []models.Issue{}
	}

	return &models.Report{
		Timestamp:        time.Now(),
		InputFile:        r.input,
		ValidationStatus: status,
		Passed:           passed,
		Summary: models.Summary{
			TotalErrors:   len(errs),
			TotalWarnings: len(warns),
			RowsProcessed: r.rows,
		},
		Errors:   errs,
		Warnings: warns,
	}
}
