package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbancomply/urbancomply/pkg/models"
)

// coerced builds a fully coerced table from CSV content.
func coerced(t *testing.T, input string, opts Options) *table {
	t.Helper()
	tbl := mustLoad(t, input)
	coerceDates(tbl, opts)
	coerceNumerics(tbl)
	return tbl
}

func TestCheckMissingData(t *testing.T) {
	input := "Date,kWh,Therms,Demand\n" +
		"2024-01-01,1250.5,45.2,150\n" +
		"2024-02-01,,42.8,\n"
	tbl := coerced(t, input, DefaultOptions())

	issues := checkMissingData(tbl, DefaultOptions())
	require.Len(t, issues, 2)

	assert.Equal(t, models.MissingData, issues[0].Kind)
	assert.Equal(t, 2, *issues[0].Row)
	assert.Equal(t, "kWh", *issues[0].Column)
	assert.Equal(t, 2, *issues[1].Row)
	assert.Equal(t, "Demand", *issues[1].Column)
}

func TestCheckMissingMonths(t *testing.T) {
	tests := []struct {
		name    string
		dates   []string
		missing []string
	}{
		{"no gap", []string{"2024-01-01", "2024-02-01", "2024-03-01"}, nil},
		{"single gap", []string{"2024-01-01", "2024-03-01"}, []string{"2024-02"}},
		{"multi month gap", []string{"2024-01-01", "2024-05-01"}, []string{"2024-02", "2024-03", "2024-04"}},
		{"year boundary", []string{"2023-11-01", "2024-02-01"}, []string{"2023-12", "2024-01"}},
		{"same month twice", []string{"2024-01-01", "2024-01-15", "2024-02-01"}, nil},
		{"single reading", []string{"2024-01-01"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "Date,kWh,Therms,Demand\n"
			for _, d := range tt.dates {
				input += d + ",1,1,1\n"
			}
			tbl := coerced(t, input, DefaultOptions())

			issues := checkMissingMonths(tbl, DefaultOptions())
			if tt.missing == nil {
				assert.Empty(t, issues)
				return
			}

			require.Len(t, issues, 1)
			assert.Equal(t, models.MissingMonths, issues[0].Kind)
			assert.Equal(t, len(tt.missing), issues[0].Count)
			for _, m := range tt.missing {
				assert.Contains(t, issues[0].Message, m)
			}
		})
	}
}

func TestCheckMissingMonths_SkipsInvalidDates(t *testing.T) {
	// The unparseable row is excluded from continuity, so Jan->Feb has no gap.
	input := "Date,kWh,Therms,Demand\n" +
		"2024-01-01,1,1,1\n" +
		"bogus,1,1,1\n" +
		"2024-02-01,1,1,1\n"
	tbl := coerced(t, input, DefaultOptions())

	assert.Empty(t, checkMissingMonths(tbl, DefaultOptions()))
}

func TestCheckDuplicateRows(t *testing.T) {
	input := "Date,kWh,Therms,Demand\n" +
		"2024-01-01,1250.5,45.2,150\n" +
		"2024-02-01,1180.3,42.8,145\n" +
		"2024-01-01,1250.5,45.2,150\n"
	tbl := coerced(t, input, DefaultOptions())

	issues := checkDuplicateRows(tbl, DefaultOptions())
	require.Len(t, issues, 1)
	assert.Equal(t, models.DuplicateRows, issues[0].Kind)
	assert.Equal(t, 1, issues[0].Count)
	assert.Contains(t, issues[0].Message, "rows 1, 3")
}

func TestCheckNegativeValues(t *testing.T) {
	input := "Date,kWh,Therms,Demand\n" +
		"2024-01-01,-100.0,45.2,150\n" +
		"2024-02-01,1180.3,42.8,145\n"
	tbl := coerced(t, input, DefaultOptions())

	issues := checkNegativeValues(tbl, DefaultOptions())
	require.Len(t, issues, 1)
	assert.Equal(t, models.NegativeValues, issues[0].Kind)
	assert.Equal(t, 1, *issues[0].Row)
	assert.Equal(t, "kWh", *issues[0].Column)
	assert.Equal(t, -100.0, *issues[0].Value)
	assert.Equal(t, 0.0, *issues[0].Threshold)
}

func TestCheckNegativeValues_CustomMinimum(t *testing.T) {
	input := "Date,kWh,Therms,Demand\n2024-01-01,5,45.2,150\n"
	opts := DefaultOptions()
	opts.MinValue = 10
	tbl := coerced(t, input, opts)

	issues := checkNegativeValues(tbl, opts)
	require.Len(t, issues, 1)
	assert.Equal(t, 5.0, *issues[0].Value)
}

func TestCheckExtremeValues(t *testing.T) {
	input := "Date,kWh,Therms,Demand\n" +
		"2024-01-01,50000000,45.2,150\n" +
		"2024-02-01,48000000,42.8,145\n"

	// Under the default 1e9 ceiling, nothing triggers.
	tbl := coerced(t, input, DefaultOptions())
	assert.Empty(t, checkExtremeValues(tbl, DefaultOptions()))

	// Lowering the ceiling below the observed values does.
	opts := DefaultOptions()
	opts.MaxValue = 1e6
	issues := checkExtremeValues(tbl, opts)
	require.Len(t, issues, 2)
	assert.Equal(t, models.ExtremeValues, issues[0].Kind)
	assert.Equal(t, models.SeverityWarning, issues[0].Kind.Severity())
	assert.Equal(t, 1e6, *issues[0].Threshold)
}

func TestCheckUnitMismatches(t *testing.T) {
	// One value two orders of magnitude above the median looks like MWh
	// slipped into a kWh column.
	input := "Date,kWh,Therms,Demand\n" +
		"2024-01-01,1250.5,45.2,150\n" +
		"2024-02-01,1180.3,42.8,145\n" +
		"2024-03-01,1100.0,38.5,140\n" +
		"2024-04-01,1190000,40.1,142\n"
	tbl := coerced(t, input, DefaultOptions())

	issues := checkUnitMismatches(tbl, DefaultOptions())
	require.Len(t, issues, 1)
	assert.Equal(t, models.PotentialUnitMismatch, issues[0].Kind)
	assert.Equal(t, "kWh", *issues[0].Column)
	assert.Equal(t, 1, issues[0].Count)
}

func TestCheckUnitMismatches_ConsistentValues(t *testing.T) {
	input := "Date,kWh,Therms,Demand\n" +
		"2024-01-01,1250.5,45.2,150\n" +
		"2024-02-01,1180.3,42.8,145\n"
	tbl := coerced(t, input, DefaultOptions())

	assert.Empty(t, checkUnitMismatches(tbl, DefaultOptions()))
}
