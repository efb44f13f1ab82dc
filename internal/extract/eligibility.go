package extract

import (
	"regexp"
	"strings"
)

// eligibilityMaxLen caps eligibility text. Truncation is a hard cut,
// mid-sentence if need be; consumers must tolerate it.
const eligibilityMaxLen = 500

var (
	blankLines = regexp.MustCompile(`\n\s*\n`)
	newlineRun = regexp.MustCompile(`\n+`)
)

// Eligibility collapses repeated blank lines and truncates the text
// to a fixed character budget, appending an ellipsis marker when cut.
func Eligibility(text string) string {
	text = strings.TrimSpace(text)
	text = blankLines.ReplaceAllString(text, "\n")
	text = newlineRun.ReplaceAllString(text, "\n")

	if runes := []rune(text); len(runes) > eligibilityMaxLen {
		text = string(runes[:eligibilityMaxLen]) + "..."
	}

	return text
}
