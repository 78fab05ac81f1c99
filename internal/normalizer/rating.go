package normalizer

import "strings"

// ratingRule maps any rating containing its keyword onto a ranked canonical
// label. The numeric prefix makes lexical sort order equal severity order.
type ratingRule struct {
	keyword string
	label   string
}

// ratingRules are evaluated independently; the keyword sets are disjoint in
// the source data.
var ratingRules = []ratingRule{
	{"developing", "1-developing"},
	{"successful", "2-successful"},
	{"high", "3-high"},
	{"top", "4-top"},
}

// RatingNormalizer maps free-text performance ratings onto a 4-level ordinal
// scale.
type RatingNormalizer struct {
	rules []ratingRule
}

// NewRatingNormalizer creates a new rating normalizer instance.
func NewRatingNormalizer() *RatingNormalizer {
	return &RatingNormalizer{rules: ratingRules}
}

// Normalize maps a lowercased rating onto its ranked label. Ratings matching
// no keyword pass through unchanged.
func (n *RatingNormalizer) Normalize(rating string) string {
	for _, r := range n.rules {
		if strings.Contains(rating, r.keyword) {
			return r.label
		}
	}

	return rating
}
