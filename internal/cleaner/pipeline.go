package cleaner

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"finaid/internal/extract"
	"finaid/internal/logger"
	"finaid/internal/models"
	"finaid/internal/report"
	"finaid/internal/score"
)

// Pipeline errors.
var (
	ErrNoInputs = errors.New("no source files loaded")
)

// Loader produces one table per readable source file for a domain.
// Files that cannot be parsed must be skipped by the loader, not
// surfaced as errors; only a total failure to produce tables is an
// error here.
type Loader interface {
	Load(domain *models.Domain) ([]*models.Table, error)
}

// Sink persists the final canonical table and the cleaning report.
type Sink interface {
	Persist(domain *models.Domain, table *models.Table, reportText string, runTime time.Time) error
}

// Pipeline runs one domain's cleaning state machine from load to
// persist. A pipeline value is single-use per Run; runs do not share
// state.
type Pipeline struct {
	domain  *models.Domain
	loader  Loader
	sink    Sink
	log     *logger.Logger
	workers int
	clock   func() time.Time
}

// Option adjusts pipeline construction.
type Option func(*Pipeline)

// WithWorkers bounds the per-row fan-out of the extract and scoring
// stages. Values below 1 mean sequential.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		p.workers = n
	}
}

// WithClock overrides the run timestamp source. The report and the
// snapshot filenames derive from this single instant.
func WithClock(clock func() time.Time) Option {
	return func(p *Pipeline) {
		p.clock = clock
	}
}

// New creates a pipeline for one domain.
func New(domain *models.Domain, loader Loader, sink Sink, log *logger.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		domain:  domain,
		loader:  loader,
		sink:    sink,
		log:     log.With("domain", domain.Name),
		workers: 1,
		clock:   time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Result summarizes one completed run.
type Result struct {
	Original int
	Final    int
	Report   string
}

// Run executes the full state machine. Any failure past LOADED aborts
// the run; nothing is persisted on failure.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	var m machine

	runTime := p.clock()

	// LOADED
	if err := m.to(StateLoaded); err != nil {
		return nil, err
	}

	sources, err := p.loader.Load(p.domain)
	if err != nil {
		return nil, fmt.Errorf("%s: load: %w", p.domain.Name, err)
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("%s: %w", p.domain.Name, ErrNoInputs)
	}

	// RECONCILED
	if err := m.to(StateReconciled); err != nil {
		return nil, err
	}

	table, rawColumns := Reconcile(p.domain, sources)
	original := table.Len()
	p.log.Info("reconciled source tables", "sources", len(sources), "rows", original, "columns", len(table.Columns))

	// DEDUPED
	if err := m.to(StateDeduped); err != nil {
		return nil, err
	}

	before := table.Len()
	Deduplicate(table)
	p.log.Info("removed duplicates", "removed", before-table.Len(), "remaining", table.Len())

	// EXTRACTED
	if err := m.to(StateExtracted); err != nil {
		return nil, err
	}

	CleanTextColumns(p.domain, table)

	ops := p.fieldOps(rawColumns)
	if err := p.forEachRow(ctx, table, func(row models.Row) {
		for _, op := range ops {
			applyOp(row, op)
		}
	}); err != nil {
		return nil, fmt.Errorf("%s: extract: %w", p.domain.Name, err)
	}

	p.log.Info("extracted structured fields", "extractors", len(ops))

	// FILTERED
	if err := m.to(StateFiltered); err != nil {
		return nil, err
	}

	before = table.Len()
	filterEmptyRows(p.domain, table)
	p.log.Info("removed rows with missing critical fields", "removed", before-table.Len(), "remaining", table.Len())

	// SCORED
	if err := m.to(StateScored); err != nil {
		return nil, err
	}

	table.AddColumn("data_quality_score")

	if err := p.forEachRow(ctx, table, func(row models.Row) {
		q := score.Quality(row, p.domain.KeyFields)
		row.Set("data_quality_score", models.Some(strconv.FormatFloat(q, 'f', 2, 64)))
	}); err != nil {
		return nil, fmt.Errorf("%s: score: %w", p.domain.Name, err)
	}

	// CATEGORIZED
	if err := m.to(StateCategorized); err != nil {
		return nil, err
	}

	labelers := p.labelers()
	for _, l := range labelers {
		table.AddColumn(l.column)
	}

	if err := p.forEachRow(ctx, table, func(row models.Row) {
		for _, l := range labelers {
			row.Set(l.column, models.Some(l.label(row)))
		}
	}); err != nil {
		return nil, fmt.Errorf("%s: categorize: %w", p.domain.Name, err)
	}

	// REPORTED
	if err := m.to(StateReported); err != nil {
		return nil, err
	}

	table.Reorder(p.domain.ColumnOrder)
	reportText := report.Build(p.domain, table, original, runTime)

	// PERSISTED
	if err := m.to(StatePersisted); err != nil {
		return nil, err
	}

	if err := p.sink.Persist(p.domain, table, reportText, runTime); err != nil {
		return nil, fmt.Errorf("%s: persist: %w", p.domain.Name, err)
	}

	p.log.Info("pipeline complete", "original", original, "final", table.Len())

	return &Result{Original: original, Final: table.Len(), Report: reportText}, nil
}

// fieldOp rewrites one output column from one input column through an
// extractor. Output and input usually coincide; the repayment period
// may read from the deadline column when the sources never carried a
// period column.
type fieldOp struct {
	output string
	input  string
	apply  func(string) string
}

func (p *Pipeline) fieldOps(rawColumns map[string]bool) []fieldOp {
	d := p.domain

	keywords := extract.ScholarshipAmountKeywords
	if d.Name == "loans" {
		keywords = extract.LoanAmountKeywords
	}

	var ops []fieldOp

	for _, col := range d.AmountColumns {
		ops = append(ops, fieldOp{
			output: col,
			input:  col,
			apply:  func(s string) string { return extract.Amount(s, keywords) },
		})
	}

	switch d.Name {
	case "loans":
		periodInput := "repayment_period"
		if !rawColumns["repayment_period"] && rawColumns["deadline"] {
			periodInput = "deadline"
		}

		ops = append(ops,
			fieldOp{output: "repayment_period", input: periodInput, apply: extract.Period},
			fieldOp{output: "interest_rate", input: "interest_rate", apply: extract.Rate},
			fieldOp{output: "age_criteria", input: "age_criteria", apply: extract.Age},
		)
	case "scholarships":
		ops = append(ops, fieldOp{output: "deadline", input: "deadline", apply: extract.Deadline})
	}

	ops = append(ops, fieldOp{output: "eligibility", input: "eligibility", apply: extract.Eligibility})

	return ops
}

func applyOp(row models.Row, op fieldOp) {
	v := row.Get(op.input)
	if v.Missing() {
		row.Set(op.output, models.None())
		return
	}

	row.Set(op.output, models.Decode(op.apply(v.Text())))
}

// labeler derives one categorical column per row.
type labeler struct {
	column string
	label  func(models.Row) string
}

func (p *Pipeline) labelers() []labeler {
	switch p.domain.Name {
	case "loans":
		return []labeler{
			{column: "loan_type", label: score.LoanType},
			{column: "loan_duration_category", label: score.LoanDuration},
		}
	case "scholarships":
		return []labeler{
			{column: "scholarship_type", label: score.ScholarshipType},
			{column: "eligible_region", label: score.EligibleRegion},
		}
	}

	return nil
}

// filterEmptyRows drops rows whose required fields are missing. This
// is the only stage that changes row count based on field values, and
// it runs after dedup by contract.
func filterEmptyRows(domain *models.Domain, t *models.Table) {
	kept := t.Rows[:0]

	for _, row := range t.Rows {
		keep := true

		for _, f := range domain.RequiredFields {
			if row.Get(f).Missing() {
				keep = false
				break
			}
		}

		if keep {
			kept = append(kept, row)
		}
	}

	t.Rows = kept
}

// forEachRow applies fn to every row, fanning out up to p.workers
// goroutines. Rows are independent; each goroutine touches only its
// own row, so output order is unchanged.
func (p *Pipeline) forEachRow(ctx context.Context, t *models.Table, fn func(models.Row)) error {
	if p.workers <= 1 {
		for _, row := range t.Rows {
			fn(row)
		}

		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for _, row := range t.Rows {
		row := row

		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			fn(row)

			return nil
		})
	}

	return g.Wait()
}
