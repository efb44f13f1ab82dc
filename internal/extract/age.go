package extract

import (
	"regexp"
	"strings"
)

// ageRules try the two-ended range form before the single age form,
// so "18 to 65 years" never degrades to "18+ years".
var ageRules = []Rule{
	{regexp.MustCompile(`(\d+)\s*(?:to|-|and)\s*(\d+)`), func(m []string) string { return m[1] + "-" + m[2] + " years" }},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)`), func(m []string) string { return m[1] + "+ years" }},
}

// Age normalizes an age eligibility range to "<a>-<b> years" or
// "<a>+ years"; unmatched text passes through trimmed.
func Age(text string) string {
	text = strings.TrimSpace(text)

	if out, ok := apply(ageRules, text); ok {
		return out
	}

	return text
}
