package validator

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// Delimiters tried during dialect detection, in priority order.
var candidateDelimiters = []rune{',', ';', '\t', '|'}

// How many records (header included) are sampled per candidate delimiter.
const dialectSampleSize = 10

// detectDelimiter infers the field delimiter by parsing a header-plus-sample
// window with each candidate and scoring field-count consistency against the
// header. A candidate only qualifies if it yields more than one column.
func detectDelimiter(data []byte) (rune, error) {
	best := rune(0)
	bestScore := 0

	for _, delim := range candidateDelimiters {
		records, err := sampleRecords(data, delim, dialectSampleSize)
		if err != nil || len(records) == 0 {
			continue
		}

		width := len(records[0])
		if width < 2 {
			continue
		}

		consistent := 0
		for _, rec := range records {
			if len(rec) == width {
				consistent++
			}
		}

		// Strictly greater, so earlier candidates win ties.
		if consistent > bestScore {
			best = delim
			bestScore = consistent
		}
	}

	if best == 0 {
		return 0, fmt.Errorf("no standard delimiter produced a parseable table")
	}

	return best, nil
}

// sampleRecords reads up to max records using the given delimiter.
func sampleRecords(data []byte, delim rune, max int) ([][]string, error) {
	r := newCSVReader(data, delim)

	var records [][]string
	for len(records) < max {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func newCSVReader(data []byte, delim rune) *csv.Reader {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true
	return r
}
