package models

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// IssueKind identifies which validation check produced an issue. The set is
// closed so consumers can branch on it programmatically; Message is prose only.
type IssueKind string

const (
	FileNotFound          IssueKind = "FileNotFound"
	InvalidFileFormat     IssueKind = "InvalidFileFormat"
	MissingColumns        IssueKind = "MissingColumns"
	InvalidDates          IssueKind = "InvalidDates"
	MissingData           IssueKind = "MissingData"
	MissingMonths         IssueKind = "MissingMonths"
	DuplicateRows         IssueKind = "DuplicateRows"
	NegativeValues        IssueKind = "NegativeValues"
	NonNumericValues      IssueKind = "NonNumericValues"
	EmptyRows             IssueKind = "EmptyRows"
	ExtremeValues         IssueKind = "ExtremeValues"
	PotentialUnitMismatch IssueKind = "PotentialUnitMismatch"
)

// Severity classifies an issue as fatal to compliance or advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Severity returns the fixed severity for an issue kind. Warnings never
// affect the pass/fail verdict.
func (k IssueKind) Severity() Severity {
	switch k {
	case EmptyRows, ExtremeValues, PotentialUnitMismatch:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// Issue is a single validation finding. Row is the 1-based data row ordinal
// (header excluded); Row and Column are null when the issue is not tied to a
// specific cell. Value/Threshold carry numeric context where applicable.
type Issue struct {
	Kind      IssueKind `json:"kind"`
	Message   string    `json:"message"`
	Row       *int      `json:"row"`
	Column    *string   `json:"column"`
	Value     *float64  `json:"value,omitempty"`
	Threshold *float64  `json:"threshold,omitempty"`
	Count     int       `json:"count,omitempty"`
}

// Validation status values.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Summary holds the issue and row counts for a validation run.
type Summary struct {
	TotalErrors   int `json:"total_errors"`
	TotalWarnings int `json:"total_warnings"`
	RowsProcessed int `json:"rows_processed"`
}

// Report is the durable output of one validation run. Passed is true iff
// Errors is empty.
type Report struct {
	Timestamp        time.Time `json:"timestamp"`
	InputFile        string    `json:"input_file"`
	ValidationStatus string    `json:"validation_status"`
	Passed           bool      `json:"passed"`
	Summary          Summary   `json:"summary"`
	Errors           []Issue   `json:"errors"`
	Warnings         []Issue   `json:"warnings"`
}

// Save writes the report as indented JSON. A write failure is returned to the
// caller rather than folded into the report.
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}

	return nil
}
