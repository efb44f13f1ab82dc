package dataset

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"finaid/internal/logger"
	"finaid/internal/models"
)

func sinkFixture() *models.Table {
	t := models.NewTable("name", "funding_amount", "contact")
	t.Rows = []models.Row{
		{
			"name":           models.Some("Uni Loan"),
			"funding_amount": models.Some("Rs. 1200000"),
			"contact":        models.Some("011"),
		},
		{
			"name": models.Some("Gov Scheme"),
		},
	}

	return t
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := WriteCSV(path, sinkFixture()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if got.Len() != 2 {
		t.Fatalf("Len = %d, want 2", got.Len())
	}

	if name := got.Rows[0].Get("name").Text(); name != "Uni Loan" {
		t.Errorf("name = %q, want Uni Loan", name)
	}

	// Missing cells serialize as the sentinel and decode back missing.
	if !got.Rows[1].Get("funding_amount").Missing() {
		t.Error("missing cell did not survive the round trip")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read raw csv: %v", err)
	}

	if !strings.Contains(string(raw), "Gov Scheme,N/A,N/A") {
		t.Errorf("sentinel not written for missing cells:\n%s", raw)
	}
}

func TestFileSink_Persist(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	s := NewFileSink(dir, "", logger.NewLogger("error"))

	runTime := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

	if err := s.Persist(models.Loans(), sinkFixture(), "report body\n", runTime); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	wantFiles := []string{
		"loans_cleaned.csv",
		"loans_cleaned_20260829_103000.csv",
		"loans_cleaning_report_20260829_103000.txt",
	}

	for _, name := range wantFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing output file %s: %v", name, err)
		}
	}

	report, err := os.ReadFile(filepath.Join(dir, wantFiles[2]))
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}

	if string(report) != "report body\n" {
		t.Errorf("report = %q, want %q", report, "report body\n")
	}
}

func TestFileSink_ScholarshipReportUsesSingularName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	s := NewFileSink(dir, "", logger.NewLogger("error"))

	runTime := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

	if err := s.Persist(models.Scholarships(), sinkFixture(), "r\n", runTime); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	// CSV names stay plural, the report name is singular.
	if _, err := os.Stat(filepath.Join(dir, "scholarships_cleaned.csv")); err != nil {
		t.Errorf("missing canonical csv: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "scholarship_cleaning_report_20260829_103000.txt")); err != nil {
		t.Errorf("missing report file: %v", err)
	}
}

func TestFileSink_SQLiteMirror(t *testing.T) {
	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "finaid.db")
	s := NewFileSink(filepath.Join(tmp, "output"), dbPath, logger.NewLogger("error"))

	runTime := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

	if err := s.Persist(models.Loans(), sinkFixture(), "r\n", runTime); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open mirror: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM "loans"`).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}

	if count != 2 {
		t.Errorf("mirror row count = %d, want 2", count)
	}

	var funding string
	row := db.QueryRow(`SELECT funding_amount FROM "loans" WHERE name = ?`, "Gov Scheme")
	if err := row.Scan(&funding); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	if funding != models.Sentinel {
		t.Errorf("missing cell stored as %q, want %q", funding, models.Sentinel)
	}
}

func TestFileSink_MirrorReplacedOnRerun(t *testing.T) {
	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "finaid.db")
	s := NewFileSink(filepath.Join(tmp, "output"), dbPath, logger.NewLogger("error"))

	runTime := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

	if err := s.Persist(models.Loans(), sinkFixture(), "r\n", runTime); err != nil {
		t.Fatalf("first Persist failed: %v", err)
	}

	second := models.NewTable("name")
	second.Rows = []models.Row{{"name": models.Some("Only Loan")}}

	if err := s.Persist(models.Loans(), second, "r\n", runTime.Add(time.Minute)); err != nil {
		t.Fatalf("second Persist failed: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open mirror: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM "loans"`).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}

	if count != 1 {
		t.Errorf("rerun must replace the mirror table, count = %d, want 1", count)
	}
}
