package cleaner

import (
	"finaid/internal/models"
)

// Reconcile merges per-source tables into one table whose column set
// is the union of every source schema plus the domain's expected
// columns, concatenated in source order. Cells absent for a row stay
// missing (they serialize as the sentinel). Alias columns are folded
// into their canonical targets per row, first non-missing source
// wins. Domains that restrict their schema are cut down to exactly
// the expected columns afterwards.
//
// The returned rawColumns set holds the column names that were
// actually present in the sources, before the expected schema was
// filled in; extraction uses it to pick substitute input columns.
func Reconcile(domain *models.Domain, sources []*models.Table) (merged *models.Table, rawColumns map[string]bool) {
	merged = models.NewTable()

	for _, src := range sources {
		merged.Append(src)
	}

	rawColumns = make(map[string]bool, len(merged.Columns))
	for _, c := range merged.Columns {
		rawColumns[c] = true
	}

	for _, c := range domain.ExpectedColumns {
		merged.AddColumn(c)
	}

	for _, alias := range domain.Aliases {
		resolveAlias(merged, alias)
	}

	if domain.RestrictToExpected {
		merged.Restrict(domain.ExpectedColumns)
	}

	return merged, rawColumns
}

// resolveAlias fills the alias target from its source columns for
// every row where the target is missing. Sources are tried in the
// fixed declaration order.
func resolveAlias(t *models.Table, alias models.Alias) {
	for _, row := range t.Rows {
		if !row.Get(alias.Target).Missing() {
			continue
		}

		for _, src := range alias.Sources {
			if v := row.Get(src); !v.Missing() {
				row.Set(alias.Target, v)
				break
			}
		}
	}
}
