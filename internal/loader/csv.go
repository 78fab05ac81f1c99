// Package loader reads the raw survey CSV into records, failing fast when
// the file does not carry the expected schema.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"surveyclean/internal/models"
	"surveyclean/pkg/utils"
)

// ErrSchemaMismatch is returned when the header row does not match the
// expected survey schema. No stage can proceed without the expected columns.
var ErrSchemaMismatch = errors.New("input schema mismatch")

// expectedHeader is the fixed column schema of the survey export.
var expectedHeader = []string{
	"timestamp",
	"status",
	"current_title",
	"current_salary",
	"salary_type",
	"percent_incr",
	"other_info",
	"location",
	"performance_rating",
}

// Loader reads survey responses from a delimited file.
type Loader struct {
	strings *utils.StringHelper
}

// NewLoader creates a new loader instance.
func NewLoader() *Loader {
	return &Loader{strings: utils.NewStringHelper()}
}

// Load reads the file at path and returns one record per data row, in file
// order. Numeric columns parse leniently: blank or unparsable values load as
// nil, which the pipeline treats as missing. A wrong header is a hard error.
func (l *Loader) Load(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	// The header row fixes the field count; later rows with a different
	// count fail the read, which is the desired fail-fast behavior.
	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	if err := l.checkHeader(header); err != nil {
		return nil, err
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read data rows: %w", err)
	}

	records := make([]models.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, l.toRecord(row))
	}

	return records, nil
}

func (l *Loader) checkHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("%w: got %d columns, want %d", ErrSchemaMismatch, len(header), len(expectedHeader))
	}

	for i, want := range expectedHeader {
		if l.strings.TrimWhitespace(header[i]) != want {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrSchemaMismatch, i, header[i], want)
		}
	}

	return nil
}

func (l *Loader) toRecord(row []string) models.Record {
	return models.Record{
		Timestamp:       l.strings.TrimWhitespace(row[0]),
		Status:          l.strings.NormalizeWhitespace(row[1]),
		RawTitle:        l.strings.NormalizeWhitespace(row[2]),
		RawSalary:       parseFloat(row[3]),
		SalaryTypeRaw:   l.strings.TrimWhitespace(row[4]),
		PercentIncrease: parseFloat(row[5]),
		OtherInfo:       l.strings.TrimWhitespace(row[6]),
		RawLocation:     l.strings.NormalizeWhitespace(row[7]),
		RawRating:       l.strings.NormalizeWhitespace(row[8]),
	}
}

// parseFloat parses an optional numeric cell. Blank and malformed cells both
// load as missing rather than erroring: absence is routine in survey data.
func parseFloat(cell string) *float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}

	return &v
}
