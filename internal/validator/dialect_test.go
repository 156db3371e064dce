package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  rune
	}{
		{
			name:  "comma",
			input: "Date,kWh,Therms,Demand\n2024-01-01,1250.5,45.2,150\n",
			want:  ',',
		},
		{
			name:  "semicolon",
			input: "Date;kWh;Therms;Demand\n2024-01-01;1250.5;45.2;150\n",
			want:  ';',
		},
		{
			name:  "tab",
			input: "Date\tkWh\tTherms\tDemand\n2024-01-01\t1250.5\t45.2\t150\n",
			want:  '\t',
		},
		{
			name:  "pipe",
			input: "Date|kWh|Therms|Demand\n2024-01-01|1250.5|45.2|150\n",
			want:  '|',
		},
		{
			name:  "comma across multiple rows",
			input: "Date,kWh,Therms,Demand\n2024-01-01,1250.5,45.2,150\n2024-02-01,1180.3,42.8,145\n",
			want:  ',',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detectDelimiter([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectDelimiter_NoParseableTable(t *testing.T) {
	inputs := map[string]string{
		"single column": "justtext\nno delimiters here\n",
		"empty input":   "",
		"prose":         "this is not tabular data at all\n",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := detectDelimiter([]byte(input))
			assert.Error(t, err)
		})
	}
}
