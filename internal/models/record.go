// Package models defines the survey record types shared across the pipeline.
package models

import "strings"

// Record is one survey response. Raw fields are immutable once loaded;
// the Normalized*/Annualized fields are filled in by the pipeline stages.
type Record struct {
	Timestamp          string
	Status             string
	RawTitle           string
	NormalizedTitle    string
	RawSalary          *float64
	SalaryTypeRaw      string
	AnnualizedSalary   *float64
	PercentIncrease    *float64
	OtherInfo          string
	RawLocation        string
	NormalizedLocation string
	RawRating          string
	NormalizedRating   string
}

// SalaryType is the pay frequency of a raw salary figure.
type SalaryType string

// Known pay frequencies. Anything else (including the "weekly" label that
// appears in the source data) is SalaryTypeUnknown and cannot be annualized.
const (
	SalaryTypeYear    SalaryType = "year"
	SalaryTypeWeek    SalaryType = "week"
	SalaryTypeHour    SalaryType = "hour"
	SalaryTypeUnknown SalaryType = ""
)

// ParseSalaryType maps a raw salary_type value onto the known frequencies.
// It never guesses: unrecognized labels come back as SalaryTypeUnknown.
func ParseSalaryType(s string) SalaryType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year":
		return SalaryTypeYear
	case "week":
		return SalaryTypeWeek
	case "hour":
		return SalaryTypeHour
	default:
		return SalaryTypeUnknown
	}
}

// Exclusion records a dropped survey response together with the stage that
// dropped it and a human-readable reason, so drops stay observable instead of
// silently shrinking the table.
type Exclusion struct {
	Record Record
	Stage  string
	Reason string
}
