package normalizer

import (
	"strings"

	"surveyclean/internal/config"
	"surveyclean/internal/models"
)

// Stage names recorded on exclusions.
const (
	StageScreen   = "screen"
	StageLocation = "location"
	StageSalary   = "salary"
)

// Exclusion reasons.
const (
	ReasonMissingRequired   = "missing required title or salary"
	ReasonNoLongerEmployed  = "location marks respondent as no longer employed"
	ReasonImplausibleSalary = "annualized salary below plausibility threshold"
)

// Result holds the cleaned table and every record the pipeline dropped,
// with the stage and reason for each drop.
type Result struct {
	Cleaned  []models.Record
	Excluded []models.Exclusion
}

// Processor runs the full normalization pipeline over loaded records.
type Processor struct {
	titles    *TitleNormalizer
	locations *LocationNormalizer
	ratings   *RatingNormalizer
	salaries  *Standardizer
}

// NewProcessor creates a processor with the given salary configuration.
func NewProcessor(cfg config.SalaryConfig) *Processor {
	return &Processor{
		titles:    NewTitleNormalizer(),
		locations: NewLocationNormalizer(),
		ratings:   NewRatingNormalizer(),
		salaries:  NewStandardizer(cfg),
	}
}

// Process transforms raw records into the cleaned table. Records are
// value-copied; the input slice is left untouched, and output row order
// matches input row order. Stage order is fixed: required-field screen,
// title, location (may drop), rating, salary (may drop).
func (p *Processor) Process(records []models.Record) Result {
	res := Result{Cleaned: make([]models.Record, 0, len(records))}

	for _, rec := range records {
		if rec.RawSalary == nil || strings.TrimSpace(rec.RawTitle) == "" {
			res.Excluded = append(res.Excluded, models.Exclusion{
				Record: rec,
				Stage:  StageScreen,
				Reason: ReasonMissingRequired,
			})

			continue
		}

		rec.NormalizedTitle = p.titles.Normalize(lower(rec.RawTitle))

		loc, dropped := p.locations.Normalize(lower(rec.RawLocation))
		if dropped {
			res.Excluded = append(res.Excluded, models.Exclusion{
				Record: rec,
				Stage:  StageLocation,
				Reason: ReasonNoLongerEmployed,
			})

			continue
		}
		rec.NormalizedLocation = loc

		rec.NormalizedRating = p.ratings.Normalize(lower(rec.RawRating))

		// Compute first, then filter: the threshold applies to the derived
		// figure, never the raw one.
		annualized := p.salaries.Annualize(*rec.RawSalary, models.ParseSalaryType(rec.SalaryTypeRaw))
		if !p.salaries.Plausible(annualized) {
			res.Excluded = append(res.Excluded, models.Exclusion{
				Record: rec,
				Stage:  StageSalary,
				Reason: ReasonImplausibleSalary,
			})

			continue
		}
		rec.AnnualizedSalary = &annualized

		res.Cleaned = append(res.Cleaned, rec)
	}

	return res
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
