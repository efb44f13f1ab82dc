// Package extract rewrites free-form source text into normalized
// structured strings. Every extractor is a pure function from text to
// text: it tries an ordered list of (pattern, formatter) rules, the
// first match wins, keyword fallbacks apply next, and unmatched input
// is returned unchanged. Extractors never fail; an input nothing
// recognizes simply passes through.
package extract

import (
	"regexp"
	"strings"
)

// Rule pairs a pattern with a formatter for its submatches. Rules are
// tried in priority order; a later rule never overrides an earlier
// successful match.
type Rule struct {
	Pattern *regexp.Regexp
	Format  func(m []string) string
}

// apply runs the rules in order against text and returns the first
// formatted match. The second result reports whether any rule fired.
func apply(rules []Rule, text string) (string, bool) {
	for _, r := range rules {
		if m := r.Pattern.FindStringSubmatch(text); m != nil {
			return r.Format(m), true
		}
	}

	return "", false
}

// containsAny reports whether lowered contains any of the keywords.
// Callers lowercase the text once up front.
func containsAny(lowered string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lowered, k) {
			return true
		}
	}

	return false
}
