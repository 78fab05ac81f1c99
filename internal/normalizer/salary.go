package normalizer

import (
	"surveyclean/internal/config"
	"surveyclean/internal/models"
)

// Standardizer converts heterogeneous pay-frequency amounts into a single
// annualized figure and decides whether the result is plausible.
type Standardizer struct {
	hoursPerWeek float64
	weeksPerYear float64
	minPlausible float64
}

// NewStandardizer creates a standardizer from the salary configuration.
func NewStandardizer(cfg config.SalaryConfig) *Standardizer {
	return &Standardizer{
		hoursPerWeek: cfg.HoursPerWeek,
		weeksPerYear: cfg.WeeksPerYear,
		minPlausible: cfg.MinPlausible,
	}
}

// Annualize converts a raw amount in the given pay frequency to a yearly
// figure. Unknown frequencies yield 0, a sentinel meaning "could not
// standardize"; the plausibility filter removes such records afterwards.
func (s *Standardizer) Annualize(amount float64, st models.SalaryType) float64 {
	switch st {
	case models.SalaryTypeYear:
		return amount
	case models.SalaryTypeWeek:
		return amount * s.weeksPerYear
	case models.SalaryTypeHour:
		return amount * s.hoursPerWeek * s.weeksPerYear
	default:
		return 0
	}
}

// Plausible reports whether an annualized figure clears the minimum
// threshold. The zero sentinel never does.
func (s *Standardizer) Plausible(annualized float64) bool {
	return annualized >= s.minPlausible
}
