package extract

import (
	"regexp"
	"strings"
)

// periodRules match year counts first, then months, then
// installments. The ordering is part of the contract: "24 month EMI"
// is months, not installments.
var periodRules = []Rule{
	{regexp.MustCompile(`(?i)(\d+)\s*(?:year|yr|years|yrs)`), func(m []string) string { return m[1] + " years" }},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:month|months|mo)`), func(m []string) string { return m[1] + " months" }},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:installment|installments|EMI)`), func(m []string) string { return m[1] + " installments" }},
}

// Period normalizes a repayment period to "<n> years", "<n> months",
// or "<n> installments"; unmatched text passes through trimmed.
func Period(text string) string {
	text = strings.TrimSpace(text)

	if out, ok := apply(periodRules, text); ok {
		return out
	}

	return text
}
