package extract

import (
	"regexp"
	"strings"
)

var percentRule = []Rule{
	{regexp.MustCompile(`([\d.]+)\s*%`), func(m []string) string { return m[1] + "%" }},
}

// interestFreeKeywords map to the normalized Interest-Free label.
var interestFreeKeywords = []string{"free", "zero", "0%", "interest-free"}

// marketRateKeywords pass the original text through verbatim.
var marketRateKeywords = []string{"competitive", "market"}

// Rate normalizes an interest rate. A leading numeric percent becomes
// "<n>%"; interest-free wording becomes the "Interest-Free" label;
// market-rate wording passes through trimmed; anything else is kept
// unchanged.
func Rate(text string) string {
	text = strings.TrimSpace(text)

	if out, ok := apply(percentRule, text); ok {
		return out
	}

	lowered := strings.ToLower(text)

	if containsAny(lowered, interestFreeKeywords) {
		return "Interest-Free"
	}

	if containsAny(lowered, marketRateKeywords) {
		return text
	}

	return text
}
