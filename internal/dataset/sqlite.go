package dataset

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"finaid/internal/models"
)

// mirrorSQLite replaces the domain's table in the sqlite database
// with the final canonical table. Every column is stored as TEXT with
// the sentinel written for missing cells, so the mirror reads exactly
// like the CSV.
func mirrorSQLite(path string, domain *models.Domain, table *models.Table) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin sqlite transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteIdent(domain.Name))); err != nil {
		return fmt.Errorf("failed to drop old sqlite table: %w", err)
	}

	cols := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		cols[i] = quoteIdent(c) + " TEXT"
	}

	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(domain.Name), strings.Join(cols, ", "))
	if _, err := tx.Exec(create); err != nil {
		return fmt.Errorf("failed to create sqlite table: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(table.Columns)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(domain.Name), placeholders)

	stmt, err := tx.Prepare(insert)
	if err != nil {
		return fmt.Errorf("failed to prepare sqlite insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(table.Columns))

	for _, row := range table.Rows {
		for i, col := range table.Columns {
			args[i] = row.Get(col).Encode()
		}

		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert sqlite row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sqlite transaction: %w", err)
	}

	return nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
