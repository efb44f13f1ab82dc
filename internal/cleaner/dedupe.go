package cleaner

import (
	"strings"

	"finaid/internal/models"
)

// Deduplicate removes duplicate rows in two passes, keeping the first
// occurrence in table order: first rows identical on (name, source),
// then rows identical on name alone. The second pass is deliberately
// lossy: same-named offers from different sources collapse. Rows with
// a missing name are not exempt; they collapse together here and are
// removed later by the empty-row filter. Running Deduplicate on its
// own output is a no-op.
func Deduplicate(t *models.Table) {
	dropDuplicates(t, "name", "source")
	dropDuplicates(t, "name")
}

// dedupKey builds the identity string for the given columns with
// whitespace-normalized cell text.
func dedupKey(row models.Row, columns []string) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = strings.Join(strings.Fields(row.Get(c).Encode()), " ")
	}

	return strings.Join(parts, "\x1f")
}

func dropDuplicates(t *models.Table, columns ...string) {
	seen := make(map[string]bool, len(t.Rows))
	kept := t.Rows[:0]

	for _, row := range t.Rows {
		key := dedupKey(row, columns)
		if seen[key] {
			continue
		}

		seen[key] = true

		kept = append(kept, row)
	}

	t.Rows = kept
}
