package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"finaid/internal/logger"
	"finaid/internal/models"
)

// timestampLayout formats run timestamps for snapshot and report
// file names.
const timestampLayout = "20060102_150405"

// FileSink writes the final table and report into an output
// directory: the canonical CSV is overwritten every run, the
// timestamped snapshot and report are append-only archives. An
// optional sqlite mirror keeps the latest table queryable.
type FileSink struct {
	dir        string
	sqlitePath string
	log        *logger.Logger
}

// NewFileSink creates a sink over an output directory. sqlitePath may
// be empty to disable the sqlite mirror.
func NewFileSink(dir, sqlitePath string, log *logger.Logger) *FileSink {
	return &FileSink{dir: dir, sqlitePath: sqlitePath, log: log}
}

// Persist writes every output for one completed domain run. Callers
// only reach this once the whole pipeline has succeeded; a failure
// here fails the run.
func (s *FileSink) Persist(domain *models.Domain, table *models.Table, reportText string, runTime time.Time) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	stamp := runTime.Format(timestampLayout)

	canonical := filepath.Join(s.dir, domain.Name+"_cleaned.csv")
	if err := WriteCSV(canonical, table); err != nil {
		return err
	}

	snapshot := filepath.Join(s.dir, fmt.Sprintf("%s_cleaned_%s.csv", domain.Name, stamp))
	if err := WriteCSV(snapshot, table); err != nil {
		return err
	}

	reportPath := filepath.Join(s.dir, fmt.Sprintf("%s_cleaning_report_%s.txt", domain.ReportName, stamp))
	if err := os.WriteFile(reportPath, []byte(reportText), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	s.log.Info("persisted cleaned dataset", "csv", canonical, "snapshot", snapshot, "report", reportPath)

	if s.sqlitePath != "" {
		if err := mirrorSQLite(s.sqlitePath, domain, table); err != nil {
			return err
		}

		s.log.Info("mirrored table to sqlite", "path", s.sqlitePath, "table", domain.Name)
	}

	return nil
}

// WriteCSV writes a table with its column order as the header row.
// Missing cells serialize as the sentinel.
func WriteCSV(path string, table *models.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}

	record := make([]string, len(table.Columns))

	for _, row := range table.Rows {
		for i, col := range table.Columns {
			record[i] = row.Get(col).Encode()
		}

		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return nil
}
