package extract

import (
	"strings"
	"testing"
)

func TestRate(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"12% per annum", "12%"},
		{"8.5 % reducing balance", "8.5%"},
		{"Interest-free for first year", "Interest-Free"},
		{"Zero interest scheme", "Interest-Free"},
		{"0%", "0%"}, // the percent rule outranks the keyword list
		{"Competitive market rates", "Competitive market rates"},
		{"contact branch", "contact branch"},
		{"N/A", "N/A"},
	}

	for _, c := range cases {
		if got := Rate(c.input); got != c.want {
			t.Errorf("Rate(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestPeriod(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"5 years", "5 years"},
		{"up to 10 yrs", "10 years"},
		{"24 months", "24 months"},
		{"repay in 60 EMI", "60 installments"},
		{"flexible", "flexible"},
		{"N/A", "N/A"},
	}

	for _, c := range cases {
		if got := Period(c.input); got != c.want {
			t.Errorf("Period(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestPeriod_YearOutranksMonth(t *testing.T) {
	// "7 years or 84 months": the year rule fires first.
	if got := Period("7 years or 84 months"); got != "7 years" {
		t.Errorf("Period = %q, want %q", got, "7 years")
	}
}

func TestAge(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"18 to 65 years", "18-65 years"},
		{"between 21 and 55", "21-55 years"},
		{"18-50", "18-50 years"},
		{"over 18 years", "18+ years"},
		{"21 yrs minimum", "21+ years"},
		{"any adult", "any adult"},
		{"N/A", "N/A"},
	}

	for _, c := range cases {
		if got := Age(c.input); got != c.want {
			t.Errorf("Age(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestDeadline(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Apply before 31/12/2026", "31/12/2026"},
		{"15-01-26", "15-01-26"},
		{"Deadline: 30 September 2026", "30 September 2026"},
		{"by 1 Oct 2026", "1 Oct 2026"},
		{"within 2 weeks of offer", "within 2 weeks of offer"},
		{"Rolling admissions", "Ongoing"},
		{"ongoing", "Ongoing"},
		{"see website", "see website"},
		{"N/A", "N/A"},
	}

	for _, c := range cases {
		if got := Deadline(c.input); got != c.want {
			t.Errorf("Deadline(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestDeadline_NumericOutranksMonthName(t *testing.T) {
	got := Deadline("31/12/2026 or 30 September 2026")
	if got != "31/12/2026" {
		t.Errorf("Deadline = %q, want the numeric date to win", got)
	}
}

func TestEligibility_CollapsesBlankLines(t *testing.T) {
	got := Eligibility("line one\n\n\nline two\n\nline three")
	if got != "line one\nline two\nline three" {
		t.Errorf("Eligibility = %q", got)
	}
}

func TestEligibility_Truncates(t *testing.T) {
	long := strings.Repeat("a", 600)

	got := Eligibility(long)
	if len(got) != 503 {
		t.Fatalf("len(Eligibility) = %d, want 503", len(got))
	}

	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated text missing ellipsis marker: %q", got[490:])
	}
}

func TestEligibility_ShortTextUnchanged(t *testing.T) {
	if got := Eligibility("open to all"); got != "open to all" {
		t.Errorf("Eligibility = %q, want unchanged", got)
	}
}
