package normalizer

import "regexp"

// laidOffSentinel marks respondents who are no longer employed. It is not a
// location, so the whole record is dropped, not just the field.
const laidOffSentinel = "laid off 3/16"

// locationRules collapses named buildings and remote-work phrasings to their
// parent city or region.
var locationRules = []rewriteRule{
	{regexp.MustCompile(`^.*los angeles center studios.*$`), "los angeles"},
	{regexp.MustCompile(`^work(ing)? from home\s*[-–—:]?\s*(.+)$`), "$2"},
}

// LocationNormalizer rewrites free-text locations onto canonical forms.
type LocationNormalizer struct {
	rules []rewriteRule
}

// NewLocationNormalizer creates a new location normalizer instance.
func NewLocationNormalizer() *LocationNormalizer {
	return &LocationNormalizer{rules: locationRules}
}

// Normalize applies the location rules to a lowercased location. The second
// return value reports that the record must be dropped entirely. The sentinel
// check runs before any rewriting.
func (n *LocationNormalizer) Normalize(location string) (string, bool) {
	if location == laidOffSentinel {
		return "", true
	}

	return applyRules(location, n.rules), false
}
