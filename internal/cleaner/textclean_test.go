package cleaner

import (
	"testing"

	"finaid/internal/models"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  padded  ", "padded"},
		{"line\none\n\ttwo", "line one two"},
		{"<b>Bold</b> offer", "Bold offer"},
		{"<a href='x'>apply here</a>", "apply here"},
		{"plain text", "plain text"},
	}

	for _, tc := range cases {
		got := cleanText(tc.in)
		if got.Missing() || got.Text() != tc.want {
			t.Errorf("cleanText(%q) = %q, want %q", tc.in, got.Encode(), tc.want)
		}
	}
}

func TestCleanText_NullLikeBecomesMissing(t *testing.T) {
	for _, in := range []string{"", "   ", "<br>", "none", "N/A", "  n/a  "} {
		if got := cleanText(in); !got.Missing() {
			t.Errorf("cleanText(%q) = %q, want missing", in, got.Encode())
		}
	}
}

func TestCleanTextColumns(t *testing.T) {
	tab := models.NewTable("name", "description", "funding_amount")
	tab.Rows = []models.Row{{
		"name":           models.Some("  <i>Uni</i>   Loan "),
		"description":    models.Some("none"),
		"funding_amount": models.Some("  Rs. 100  "),
	}}

	CleanTextColumns(models.Loans(), tab)

	row := tab.Rows[0]

	if got := row.Get("name").Text(); got != "Uni Loan" {
		t.Errorf("name = %q, want Uni Loan", got)
	}

	if !row.Get("description").Missing() {
		t.Error("null-like description must become missing")
	}

	// funding_amount is not a text column and stays untouched.
	if got := row.Get("funding_amount").Text(); got != "  Rs. 100  " {
		t.Errorf("funding_amount = %q, want untouched", got)
	}
}
