package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueKindSeverity(t *testing.T) {
	errors := []IssueKind{
		FileNotFound, InvalidFileFormat, MissingColumns, InvalidDates,
		MissingData, MissingMonths, DuplicateRows, NegativeValues, NonNumericValues,
	}
	for _, kind := range errors {
		assert.Equal(t, SeverityError, kind.Severity(), string(kind))
	}

	warnings := []IssueKind{EmptyRows, ExtremeValues, PotentialUnitMismatch}
	for _, kind := range warnings {
		assert.Equal(t, SeverityWarning, kind.Severity(), string(kind))
	}
}

func TestIssueJSONNullContext(t *testing.T) {
	data, err := json.Marshal(Issue{Kind: MissingMonths, Message: "gap"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Row and column are always present, null when not tied to a cell;
	// numeric context is omitted when absent.
	assert.Nil(t, decoded["row"])
	assert.Nil(t, decoded["column"])
	assert.NotContains(t, decoded, "value")
	assert.NotContains(t, decoded, "threshold")
}

func TestReportJSONShape(t *testing.T) {
	row := 2
	col := "kWh"
	report := Report{
		Timestamp:        time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		InputFile:        "building.csv",
		ValidationStatus: StatusFail,
		Passed:           false,
		Summary:          Summary{TotalErrors: 1, TotalWarnings: 0, RowsProcessed: 12},
		Errors: []Issue{
			{Kind: NegativeValues, Message: "negative", Row: &row, Column: &col},
		},
		Warnings: []Issue{},
	}

	data, err := json.Marshal(&report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "building.csv", decoded["input_file"])
	assert.Equal(t, "FAIL", decoded["validation_status"])
	assert.Equal(t, false, decoded["passed"])

	summary := decoded["summary"].(map[string]any)
	assert.Equal(t, float64(1), summary["total_errors"])
	assert.Equal(t, float64(12), summary["rows_processed"])

	// Empty lists serialize as [], not null.
	assert.Equal(t, []any{}, decoded["warnings"])
}
