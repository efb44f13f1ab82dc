// Package score derives the data quality score and categorical labels
// for canonical rows. Categorization is keyword-driven over ordered
// rule lists and never consults the quality score.
package score

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"finaid/internal/models"
)

// Quality computes 100 * k/n over the domain's key fields, where k is
// the count of non-missing key fields, rounded to 2 decimal places.
func Quality(row models.Row, keyFields []string) float64 {
	filled := 0

	for _, field := range keyFields {
		if !row.Get(field).Missing() {
			filled++
		}
	}

	score := 100 * float64(filled) / float64(len(keyFields))

	return math.Round(score*100) / 100
}

// CategoryRule maps keyword hits to one label. Rules are ordered and
// the first rule with any keyword hit wins.
type CategoryRule struct {
	Label    string
	Keywords []string
}

// Categorize returns the label of the first matching rule, or the
// fallback when nothing matches. Matching is substring containment
// over the lowercased text.
func Categorize(text string, rules []CategoryRule, fallback string) string {
	lowered := strings.ToLower(text)

	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) {
				return rule.Label
			}
		}
	}

	return fallback
}

// joinFields concatenates row cells with single spaces, skipping
// nothing: missing cells contribute their empty text.
func joinFields(row models.Row, fields ...string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = row.Get(f).Text()
	}

	return strings.Join(parts, " ")
}

// LoanTypeRules categorize loans; the government rule outranks the
// bank-name rule, so a government bank scheme counts as government.
var LoanTypeRules = []CategoryRule{
	{Label: "Government Loan", Keywords: []string{"government", "mohe"}},
	{Label: "Bank Loan", Keywords: []string{"bank", "boc", "commercial", "peoples", "hnb", "nsb", "pabc"}},
	{Label: "NSB Loan", Keywords: []string{"buddhi", "nsb"}},
	{Label: "DAI Related", Keywords: []string{"dai", "awarding"}},
}

// LoanType labels a loan row from its name and description.
func LoanType(row models.Row) string {
	return Categorize(joinFields(row, "name", "description"), LoanTypeRules, "Other")
}

var firstNumber = regexp.MustCompile(`(\d+)`)

// LoanDuration buckets the repayment period into short, medium, or
// long term by its first number, read as years.
func LoanDuration(row models.Row) string {
	period := row.Get("repayment_period")
	if period.Missing() {
		return "Unknown"
	}

	m := firstNumber.FindString(period.Text())
	if m == "" {
		return "Unknown"
	}

	years, err := strconv.Atoi(m)
	if err != nil {
		return "Unknown"
	}

	switch {
	case years <= 3:
		return "Short-term (≤3 years)"
	case years <= 7:
		return "Medium-term (4-7 years)"
	default:
		return "Long-term (>7 years)"
	}
}

// ScholarshipTypeRules categorize scholarships by award basis.
var ScholarshipTypeRules = []CategoryRule{
	{Label: "Merit-Based", Keywords: []string{"merit", "academic", "performance", "exam", "gpa"}},
	{Label: "Need-Based", Keywords: []string{"need", "income", "poor", "low-income", "financial"}},
	{Label: "Talent-Based", Keywords: []string{"sport", "athletic", "talent"}},
	{Label: "Grant/Bursary", Keywords: []string{"bursary", "grant"}},
	{Label: "Government", Keywords: []string{"government", "mahapola"}},
}

// ScholarshipType labels a scholarship row from its name and
// description.
func ScholarshipType(row models.Row) string {
	return Categorize(joinFields(row, "name", "description"), ScholarshipTypeRules, "General")
}

// RegionRules categorize the eligible region for scholarships.
var RegionRules = []CategoryRule{
	{Label: "Sri Lanka", Keywords: []string{"sri lanka", "sliit", "ousl"}},
	{Label: "Local", Keywords: []string{"local", "domestic"}},
	{Label: "International", Keywords: []string{"foreign", "overseas", "international", "abroad"}},
	{Label: "Both", Keywords: []string{"both", "local or"}},
}

// EligibleRegion labels a scholarship row's region from its name,
// description, and eligibility text.
func EligibleRegion(row models.Row) string {
	return Categorize(joinFields(row, "name", "description", "eligibility"), RegionRules, "Unknown")
}
