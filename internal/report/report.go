// Package report renders the cleaning summary for one domain run.
// Given the same table and run timestamp, the report text is
// byte-identical; there is no hidden state and no clock access here.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"finaid/internal/models"
)

const rule = "======================================================================"

// Quality histogram thresholds.
const (
	excellentMin = 80
	goodMin      = 60
	averageMin   = 40
)

// Build renders the fixed-width cleaning report for a finalized
// table. original is the row count before any stage removed rows.
func Build(domain *models.Domain, t *models.Table, original int, runTime time.Time) string {
	var b strings.Builder

	final := t.Len()

	removalRate := 0.0
	if original > 0 {
		removalRate = float64(original-final) / float64(original) * 100
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, "%s DATA CLEANING REPORT\n", strings.ToUpper(domain.ReportName))
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "Timestamp: %s\n\n", runTime.Format("2006-01-02 15:04:05"))

	b.WriteString("STATISTICS:\n-----------\n")
	fmt.Fprintf(&b, "Original Records: %d\n", original)
	fmt.Fprintf(&b, "Cleaned Records: %d\n", final)
	fmt.Fprintf(&b, "Removed Records: %d\n", original-final)
	fmt.Fprintf(&b, "Removal Rate: %.2f%%\n\n", removalRate)

	writeQuality(&b, t)
	writeDistributions(&b, domain, t)
	writeCompleteness(&b, domain, t)

	fmt.Fprintf(&b, "%s\n", rule)

	return b.String()
}

func writeQuality(b *strings.Builder, t *models.Table) {
	scores := make([]float64, 0, t.Len())

	for _, row := range t.Rows {
		if v := row.Get("data_quality_score"); !v.Missing() {
			if f, err := strconv.ParseFloat(v.Text(), 64); err == nil {
				scores = append(scores, f)
			}
		}
	}

	b.WriteString("DATA QUALITY:\n-----------\n")

	if len(scores) == 0 {
		b.WriteString("No scored records.\n\n")
		return
	}

	fmt.Fprintf(b, "Average Quality Score: %.2f/100\n", mean(scores))
	fmt.Fprintf(b, "Median Quality Score: %.2f/100\n", median(scores))
	fmt.Fprintf(b, "Min Quality Score: %.2f/100\n", minOf(scores))
	fmt.Fprintf(b, "Max Quality Score: %.2f/100\n\n", maxOf(scores))

	var excellent, good, average, poor int

	for _, s := range scores {
		switch {
		case s >= excellentMin:
			excellent++
		case s >= goodMin:
			good++
		case s >= averageMin:
			average++
		default:
			poor++
		}
	}

	b.WriteString("Records by Quality:\n")
	fmt.Fprintf(b, "  - Excellent (80-100): %d\n", excellent)
	fmt.Fprintf(b, "  - Good (60-79): %d\n", good)
	fmt.Fprintf(b, "  - Average (40-59): %d\n", average)
	fmt.Fprintf(b, "  - Poor (<40): %d\n\n", poor)
}

func writeDistributions(b *strings.Builder, domain *models.Domain, t *models.Table) {
	b.WriteString("DISTRIBUTION:\n-----------\n")

	for _, dist := range domain.Distributions {
		fmt.Fprintf(b, "%s:\n", dist.Title)
		b.WriteString(countTable(t, dist.Column))
		b.WriteString("\n")
	}
}

// countTable renders value counts for a column, labels left-aligned
// and counts right-aligned, ordered by count descending then label
// ascending. Ties are pinned so the output stays deterministic.
func countTable(t *models.Table, column string) string {
	counts := make(map[string]int)

	for _, row := range t.Rows {
		counts[row.Get(column).Encode()]++
	}

	type entry struct {
		label string
		count int
	}

	entries := make([]entry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, entry{label, count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}

		return entries[i].label < entries[j].label
	})

	labelWidth, countWidth := 0, 0

	for _, e := range entries {
		if w := runewidth.StringWidth(e.label); w > labelWidth {
			labelWidth = w
		}

		if w := len(strconv.Itoa(e.count)); w > countWidth {
			countWidth = w
		}
	}

	var b strings.Builder

	for _, e := range entries {
		pad := labelWidth - runewidth.StringWidth(e.label)
		fmt.Fprintf(&b, "%s%s  %*d\n", e.label, strings.Repeat(" ", pad), countWidth, e.count)
	}

	return b.String()
}

func writeCompleteness(b *strings.Builder, domain *models.Domain, t *models.Table) {
	b.WriteString("FIELD COMPLETENESS:\n-----------\n")

	total := t.Len()

	for _, field := range domain.KeyFields {
		filled := 0

		for _, row := range t.Rows {
			if !row.Get(field).Missing() {
				filled++
			}
		}

		pct := 0.0
		if total > 0 {
			pct = float64(filled) / float64(total) * 100
		}

		fmt.Fprintf(b, "%s: %d/%d (%.2f%%)\n", fieldTitle(field), filled, total, pct)
	}

	b.WriteString("\n")
}

// fieldTitle renders a column name as a report heading,
// "funding_amount" becoming "Funding Amount".
func fieldTitle(column string) string {
	words := strings.Split(column, "_")
	for i, w := range words {
		if w == "" {
			continue
		}

		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}

	return sorted[mid]
}

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}

	return m
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}

	return m
}
