package extract

import (
	"regexp"
	"strings"
)

// currencyFormat strips thousands separators and re-emits the amount
// under the local currency code.
func currencyFormat(m []string) string {
	return "Rs. " + strings.ReplaceAll(m[1], ",", "")
}

// amountRules are tried in priority order: local currency forms
// first, then the generic dollar forms.
var amountRules = []Rule{
	{regexp.MustCompile(`(?i)Rs\.?\s*([\d,]+(?:\.\d{2})?)`), currencyFormat},
	{regexp.MustCompile(`(?i)LKR\s*([\d,]+(?:\.\d{2})?)`), currencyFormat},
	{regexp.MustCompile(`(?i)\$([\d,]+(?:\.\d{2})?)`), currencyFormat},
	{regexp.MustCompile(`(?i)USD\s*([\d,]+(?:\.\d{2})?)`), currencyFormat},
}

// Keyword fallbacks for descriptive amount text, kept verbatim. The
// loan set additionally recognizes "maximum".
var (
	LoanAmountKeywords        = []string{"varies", "based", "up to", "minimum", "maximum"}
	ScholarshipAmountKeywords = []string{"varies", "based", "up to", "minimum"}
)

// Amount normalizes a monetary amount. Currency-prefixed numbers are
// re-emitted as "Rs. <amount>" with separators stripped; percentage
// text is kept verbatim (amount fields sometimes hold a rate);
// descriptive keyword text is kept verbatim trimmed; anything else
// passes through unchanged.
func Amount(text string, keywords []string) string {
	if out, ok := apply(amountRules, text); ok {
		return out
	}

	if strings.Contains(text, "%") {
		return strings.TrimSpace(text)
	}

	if containsAny(strings.ToLower(text), keywords) {
		return strings.TrimSpace(text)
	}

	return text
}
