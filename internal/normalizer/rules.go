// Package normalizer provides the rule-based cleaning stages that turn raw
// survey fields into a comparable schema.
package normalizer

import "regexp"

// rewriteRule pairs a compiled pattern with its replacement. Rule lists are
// ordered: each rule runs against the previous rule's output.
type rewriteRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// applyRules folds an ordered rule list over the input, feeding each rule's
// output into the next. Unmatched input passes through unchanged.
func applyRules(s string, rules []rewriteRule) string {
	for _, r := range rules {
		s = r.pattern.ReplaceAllString(s, r.replacement)
	}

	return s
}
