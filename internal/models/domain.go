package models

// Alias copies a source column into a target column when the target
// cell is missing. Sources are tried in order; the first non-missing
// value wins.
type Alias struct {
	Target  string
	Sources []string
}

// Domain describes one cleaning pipeline. The two domains (loans and
// scholarships) are structurally identical pipelines with different
// schema facts; every list here is a fixed, explicit constant, not
// derived at runtime.
type Domain struct {
	Name string

	// ReportName is the stem used in report titles and report file
	// names. It differs from Name for scholarships, where the
	// historical outputs use the singular form.
	ReportName string

	// FileKeywords select source files by name; FileExclude vetoes
	// files belonging to the other domain. Matching is
	// case-insensitive and restricted to .csv files.
	FileKeywords []string
	FileExclude  string

	// ExpectedColumns is the schema every reconciled row must carry.
	// When RestrictToExpected is set, unrecognized source columns are
	// dropped after reconciliation instead of passed through.
	ExpectedColumns    []string
	RestrictToExpected bool

	Aliases []Alias

	// TextColumns receive whitespace/HTML cleanup before extraction.
	TextColumns []string

	// AmountColumns receive the currency amount extractor.
	AmountColumns []string

	// KeyFields is the fixed subset scored for data quality.
	KeyFields []string

	// RequiredFields must be non-missing for a row to survive the
	// empty-row filter.
	RequiredFields []string

	// ColumnOrder is the canonical output ordering; unrecognized
	// columns are appended after it.
	ColumnOrder []string

	// Distributions lists the categorical columns the cleaning report
	// breaks down, in report order.
	Distributions []Distribution
}

// Distribution names one report breakdown section.
type Distribution struct {
	Title  string
	Column string
}

// Loans returns the loan domain definition.
func Loans() *Domain {
	common := []string{
		"name", "description", "eligibility", "funding_amount",
		"deadline", "contact", "application_url", "source",
		"url", "scrape_date",
	}
	bank := []string{
		"bank_name", "loan_product_name", "maximum_loan_amount",
		"minimum_loan_amount", "interest_rate", "repayment_period",
		"age_criteria", "income_criteria", "documents_required",
		"special_benefits", "contact_info", "website_url", "bank_code",
	}

	return &Domain{
		Name:            "loans",
		ReportName:      "loans",
		FileKeywords:    []string{"loan", "dai", "institution"},
		FileExclude:     "scholarship",
		ExpectedColumns: append(common, bank...),
		Aliases: []Alias{
			{Target: "name", Sources: []string{"bank_name", "loan_product_name"}},
			{Target: "contact", Sources: []string{"contact_info"}},
			{Target: "application_url", Sources: []string{"website_url"}},
		},
		TextColumns: []string{
			"name", "description", "eligibility", "contact",
			"loan_product_name",
		},
		AmountColumns: []string{
			"funding_amount", "maximum_loan_amount", "minimum_loan_amount",
		},
		KeyFields: []string{
			"name", "description", "eligibility", "funding_amount",
			"contact",
		},
		RequiredFields: []string{"name"},
		ColumnOrder: []string{
			"name",
			"loan_type",
			"loan_duration_category",
			"description",
			"eligibility",
			"maximum_loan_amount",
			"minimum_loan_amount",
			"funding_amount",
			"interest_rate",
			"repayment_period",
			"age_criteria",
			"income_criteria",
			"contact",
			"application_url",
			"source",
			"data_quality_score",
			"scrape_date",
		},
		Distributions: []Distribution{
			{Title: "By Loan Type", Column: "loan_type"},
			{Title: "By Loan Duration", Column: "loan_duration_category"},
			{Title: "By Source", Column: "source"},
		},
	}
}

// Scholarships returns the scholarship domain definition.
func Scholarships() *Domain {
	expected := []string{
		"name", "description", "eligibility", "funding_amount",
		"deadline", "contact", "application_url", "source",
		"url", "scrape_date",
	}

	return &Domain{
		Name:               "scholarships",
		ReportName:         "scholarship",
		FileKeywords:       []string{"scholarship"},
		FileExclude:        "loan",
		ExpectedColumns:    expected,
		RestrictToExpected: true,
		TextColumns: []string{
			"name", "description", "eligibility", "contact",
		},
		AmountColumns: []string{"funding_amount"},
		KeyFields: []string{
			"name", "description", "eligibility", "funding_amount",
			"deadline", "contact",
		},
		RequiredFields: []string{"name", "source"},
		ColumnOrder: []string{
			"name",
			"scholarship_type",
			"eligible_region",
			"description",
			"eligibility",
			"funding_amount",
			"deadline",
			"contact",
			"application_url",
			"source",
			"url",
			"data_quality_score",
			"scrape_date",
		},
		Distributions: []Distribution{
			{Title: "By Scholarship Type", Column: "scholarship_type"},
			{Title: "By Eligible Region", Column: "eligible_region"},
			{Title: "By Source", Column: "source"},
		},
	}
}
