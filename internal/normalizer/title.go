package normalizer

import "regexp"

// titleRules is the ordered rewrite list for job titles. Order matters: the
// seniority rules must run before the level-digit rules, and the
// consolidation rules operate on the output of everything above them.
var titleRules = []rewriteRule{
	// Garbage and placeholder titles carry no information. They blank the
	// field; the record itself is kept.
	{regexp.MustCompile(`^x$`), ""},
	{regexp.MustCompile(`^position in ii tier$`), ""},
	{regexp.MustCompile(`^(i('d| would) )?(prefer|rather) not (to )?(say|answer|disclose).*$`), ""},
	{regexp.MustCompile(`^(can'?t|cannot) (say|disclose).*$`), ""},

	// Seniority descriptors collapse to "senior".
	{regexp.MustCompile(`\bsr\.?(\s)`), "senior$1"},
	{regexp.MustCompile(`\bsenor\b`), "senior"},

	// Bare numeric level suffixes become letter levels, matching titles that
	// already use them. Only digits at word boundaries are rewritten.
	{regexp.MustCompile(`\b1\b`), "i"},
	{regexp.MustCompile(`\b2\b`), "ii"},

	// Known typos and verbose variants consolidate to one canonical title.
	// Wildcards are deliberately greedy: a recognizable phrase claims the
	// whole string.
	{regexp.MustCompile(`\bprinciple\b`), "principal"},
	{regexp.MustCompile(`^principal .*engineer.*$`), "principal software engineer"},
	{regexp.MustCompile(`^.*\bquality assurance\b(.*)$`), "qa$1"},
	{regexp.MustCompile(`^.*u[ix]\s*/\s*u[ix] designer.*$`), "ui/ux designer"},
	{regexp.MustCompile(`^associate software .*in test$`), "associate software development engineer in test"},
}

// TitleNormalizer rewrites free-text job titles onto canonical forms.
type TitleNormalizer struct {
	rules []rewriteRule
}

// NewTitleNormalizer creates a new title normalizer instance.
func NewTitleNormalizer() *TitleNormalizer {
	return &TitleNormalizer{rules: titleRules}
}

// Normalize applies the ordered title rules to a lowercased title. An empty
// result means the title was a known placeholder; callers keep the record.
// Unmatched input passes through unchanged.
func (n *TitleNormalizer) Normalize(title string) string {
	return applyRules(title, n.rules)
}
