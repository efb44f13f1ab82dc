// Package dataset handles the file boundaries of a cleaning run:
// discovering and reading per-source CSV files, and persisting the
// final canonical table, snapshot, and report. No other package
// touches the filesystem during a run.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"finaid/internal/logger"
	"finaid/internal/models"
)

// ErrEmptyFile is returned for a CSV file with no header row.
var ErrEmptyFile = errors.New("csv file has no header row")

// Loader reads the source CSV files for a domain from one directory.
type Loader struct {
	dir string
	log *logger.Logger
}

// NewLoader creates a loader over a data directory.
func NewLoader(dir string, log *logger.Logger) *Loader {
	return &Loader{dir: dir, log: log}
}

// Load returns one table per readable source file, in filename order.
// A file that cannot be parsed is logged and skipped; the load only
// fails when the directory itself is unreadable. Zero tables for zero
// matching or readable files is not an error here — the pipeline
// decides that case.
func (l *Loader) Load(domain *models.Domain) ([]*models.Table, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var tables []*models.Table

	for _, entry := range entries {
		if entry.IsDir() || !MatchesDomain(entry.Name(), domain) {
			continue
		}

		path := filepath.Join(l.dir, entry.Name())

		table, err := ReadCSV(path)
		if err != nil {
			l.log.Error("skipping unreadable source file", "file", path, "error", err)
			continue
		}

		l.log.Info("loaded source file", "file", path, "rows", table.Len())

		tables = append(tables, table)
	}

	return tables, nil
}

// MatchesDomain reports whether a file name belongs to the domain:
// .csv extension, any domain keyword present, and the other domain's
// keyword absent. Matching is case-insensitive.
func MatchesDomain(name string, domain *models.Domain) bool {
	lowered := strings.ToLower(name)

	if !strings.HasSuffix(lowered, ".csv") {
		return false
	}

	if strings.Contains(lowered, domain.FileExclude) {
		return false
	}

	for _, kw := range domain.FileKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}

	return false
}

// ReadCSV parses one source file into a table. Rows shorter than the
// header leave their trailing cells missing; longer rows have their
// extras dropped. Sentinel and null-like cell spellings decode to
// missing.
func ReadCSV(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}

	header := records[0]
	table := models.NewTable(header...)

	for _, rec := range records[1:] {
		row := models.Row{}

		for i, col := range header {
			if i < len(rec) {
				row.Set(col, models.Decode(rec[i]))
			}
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
