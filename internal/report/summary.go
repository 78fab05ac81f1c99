// Package report aggregates the cleaned table into value counts and salary
// statistics, rendered as aligned plain-text tables.
package report

import (
	"fmt"
	"sort"
	"strings"

	"surveyclean/internal/models"

	"github.com/mattn/go-runewidth"
)

// ValueCount is one distinct value and its frequency.
type ValueCount struct {
	Value string
	Count int
}

// ColumnCounts holds the frequency table of one categorical column, sorted by
// count descending, then value ascending.
type ColumnCounts struct {
	Column string
	Counts []ValueCount
}

// SalaryStats describes the adjusted salary distribution.
type SalaryStats struct {
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	Median float64
}

// Summary is the full report over a cleaned table.
type Summary struct {
	Rows    int
	Columns []ColumnCounts
	Salary  SalaryStats
}

// Summarize computes value counts for the categorical columns and summary
// statistics for the adjusted salary.
func Summarize(records []models.Record) Summary {
	s := Summary{Rows: len(records)}

	s.Columns = []ColumnCounts{
		countColumn("status", records, func(r models.Record) string { return r.Status }),
		countColumn("adjusted_title", records, func(r models.Record) string { return r.NormalizedTitle }),
		countColumn("salary_type", records, func(r models.Record) string { return r.SalaryTypeRaw }),
		countColumn("location", records, func(r models.Record) string { return r.NormalizedLocation }),
		countColumn("performance_rating", records, func(r models.Record) string { return r.NormalizedRating }),
	}

	s.Salary = salaryStats(records)

	return s
}

func countColumn(name string, records []models.Record, field func(models.Record) string) ColumnCounts {
	freq := make(map[string]int)
	for _, r := range records {
		freq[field(r)]++
	}

	counts := make([]ValueCount, 0, len(freq))
	for v, n := range freq {
		counts = append(counts, ValueCount{Value: v, Count: n})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}

		return counts[i].Value < counts[j].Value
	})

	return ColumnCounts{Column: name, Counts: counts}
}

func salaryStats(records []models.Record) SalaryStats {
	var values []float64

	for _, r := range records {
		if r.AnnualizedSalary != nil {
			values = append(values, *r.AnnualizedSalary)
		}
	}

	if len(values) == 0 {
		return SalaryStats{}
	}

	sort.Float64s(values)

	var sum float64
	for _, v := range values {
		sum += v
	}

	stats := SalaryStats{
		Count: len(values),
		Mean:  sum / float64(len(values)),
		Min:   values[0],
		Max:   values[len(values)-1],
	}

	mid := len(values) / 2
	if len(values)%2 == 1 {
		stats.Median = values[mid]
	} else {
		stats.Median = (values[mid-1] + values[mid]) / 2
	}

	return stats
}

// Render formats the summary as aligned text tables.
func (s Summary) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "cleaned rows: %d\n", s.Rows)

	for _, col := range s.Columns {
		b.WriteString("\n")
		b.WriteString(renderCounts(col))
	}

	b.WriteString("\n")
	b.WriteString(renderSalary(s.Salary))

	return b.String()
}

func renderCounts(col ColumnCounts) string {
	width := runewidth.StringWidth(col.Column)
	for _, c := range col.Counts {
		if w := runewidth.StringWidth(c.Value); w > width {
			width = w
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s  count\n", pad(col.Column, width))

	for _, c := range col.Counts {
		fmt.Fprintf(&b, "%s  %d\n", pad(c.Value, width), c.Count)
	}

	return b.String()
}

func renderSalary(stats SalaryStats) string {
	rows := []struct {
		label string
		value string
	}{
		{"count", fmt.Sprintf("%d", stats.Count)},
		{"mean", fmt.Sprintf("%.2f", stats.Mean)},
		{"min", fmt.Sprintf("%.2f", stats.Min)},
		{"median", fmt.Sprintf("%.2f", stats.Median)},
		{"max", fmt.Sprintf("%.2f", stats.Max)},
	}

	var b strings.Builder

	b.WriteString("adjusted_salary\n")

	for _, r := range rows {
		fmt.Fprintf(&b, "%s  %s\n", pad(r.label, 6), r.value)
	}

	return b.String()
}

// pad right-pads s to the given display width, runewidth-aware so multibyte
// location names stay aligned.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}

	return s + strings.Repeat(" ", gap)
}
