package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"surveyclean/internal/models"
)

// outputHeader is the cleaned-table schema: the original columns, with
// location and performance_rating carrying their normalized values, plus the
// two derived columns.
var outputHeader = []string{
	"timestamp",
	"status",
	"current_title",
	"current_salary",
	"salary_type",
	"percent_incr",
	"other_info",
	"location",
	"performance_rating",
	"adjusted_title",
	"adjusted_salary",
}

// CSVWriter writes cleaned records to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write(outputHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends the cleaned records in order.
func (c *CSVWriter) Write(records []models.Record) error {
	for _, rec := range records {
		row := []string{
			rec.Timestamp,
			rec.Status,
			rec.RawTitle,
			formatFloat(rec.RawSalary),
			rec.SalaryTypeRaw,
			formatFloat(rec.PercentIncrease),
			rec.OtherInfo,
			rec.NormalizedLocation,
			rec.NormalizedRating,
			rec.NormalizedTitle,
			formatFloat(rec.AnnualizedSalary),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()

	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}
