package extract

import (
	"regexp"
	"strings"
)

// matchedDate returns the date substring exactly as written; deadline
// normalization keeps the source spelling rather than reformatting.
func matchedDate(m []string) string { return m[1] }

// deadlineRules match explicit dates: numeric first, then full month
// names, then abbreviated month names.
var deadlineRules = []Rule{
	{regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`), matchedDate},
	{regexp.MustCompile(`(?i)(\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4})`), matchedDate},
	{regexp.MustCompile(`(?i)(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{4})`), matchedDate},
}

// relativeKeywords keep relative-duration text verbatim.
var relativeKeywords = []string{"week", "month", "day", "hour"}

// ongoingKeywords normalize to the Ongoing label.
var ongoingKeywords = []string{"ongoing", "rolling", "continuous"}

// Deadline normalizes a scholarship deadline. Explicit dates are
// returned as matched; relative durations pass through trimmed;
// open-ended wording becomes "Ongoing"; anything else is unchanged.
func Deadline(text string) string {
	text = strings.TrimSpace(text)

	if out, ok := apply(deadlineRules, text); ok {
		return out
	}

	lowered := strings.ToLower(text)

	if containsAny(lowered, relativeKeywords) {
		return text
	}

	if containsAny(lowered, ongoingKeywords) {
		return "Ongoing"
	}

	return text
}
