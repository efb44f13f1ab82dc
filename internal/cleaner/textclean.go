package cleaner

import (
	"regexp"
	"strings"

	"finaid/internal/models"
)

var (
	htmlTag       = regexp.MustCompile(`<[^>]+>`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// cleanText trims, collapses whitespace runs to single spaces, and
// strips HTML tags. Text that cleans down to nothing, or to a
// null-like spelling, decodes to missing.
func cleanText(text string) models.Value {
	text = strings.TrimSpace(text)
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = htmlTag.ReplaceAllString(text, "")

	return models.Decode(strings.TrimSpace(text))
}

// CleanTextColumns applies cleanText to the domain's free-text
// columns on every row.
func CleanTextColumns(domain *models.Domain, t *models.Table) {
	for _, row := range t.Rows {
		for _, col := range domain.TextColumns {
			if v := row.Get(col); !v.Missing() {
				row.Set(col, cleanText(v.Text()))
			}
		}
	}
}
