package services

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/medora/tenant-seeder/internal/domain/entities"
	"github.com/medora/tenant-seeder/internal/infrastructure/observability"
)

// Seeding categories, in the order the commands process them
const (
	CategoryMedicines  = "medicines"
	CategoryProcedures = "procedures"
	CategoryLabTests   = "lab_tests"
	CategoryDoctors    = "doctors"
	CategoryPatients   = "patients"
)

// CategoryResult is the tally of one category
type CategoryResult struct {
	Category string
	Table    string
	Tally
}

// RunSummary accumulates the counts of a single run. It lives only as long
// as the process and is reported on stdout.
type RunSummary struct {
	Command        string
	Schema         string
	Categories     []CategoryResult
	Reconcile      *ReconcileReport
	UIDsAssigned   int
	UIDsBackfilled int
	StartedAt      time.Time
	FinishedAt     time.Time
}

// NewRunSummary starts a summary for command against schema
func NewRunSummary(command, schema string) *RunSummary {
	return &RunSummary{Command: command, Schema: schema, StartedAt: time.Now()}
}

// Add records a category result and forwards it to the seed counters
func (s *RunSummary) Add(ctx context.Context, metrics *observability.SeedMetrics, category, table string, tally Tally) {
	s.Categories = append(s.Categories, CategoryResult{Category: category, Table: table, Tally: tally})
	metrics.RecordTally(ctx, table, tally.Inserted, tally.Skipped)
}

// Tally returns the result recorded for category
func (s *RunSummary) Tally(category string) (Tally, bool) {
	for _, c := range s.Categories {
		if c.Category == category {
			return c.Tally, true
		}
	}
	return Tally{}, false
}

// Finish stamps the end time
func (s *RunSummary) Finish() {
	s.FinishedAt = time.Now()
}

// Print writes the human-readable summary
func (s *RunSummary) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Seed summary for %s (%s)\n", s.Schema, s.Command)
	for _, c := range s.Categories {
		fmt.Fprintf(tw, "  %s\tinserted %d\tskipped %d\n", c.Category, c.Inserted, c.Skipped)
	}
	if s.UIDsAssigned > 0 || s.UIDsBackfilled > 0 || s.hasCategory(CategoryPatients) {
		fmt.Fprintf(tw, "  patient_uid\tassigned %d\tbackfilled %d\n", s.UIDsAssigned, s.UIDsBackfilled)
	}
	if s.Reconcile != nil {
		fmt.Fprintf(tw, "  schema\tcolumns added %d\tddl skipped %d\n", len(s.Reconcile.Added), len(s.Reconcile.Skipped))
	}
	if !s.FinishedAt.IsZero() {
		fmt.Fprintf(tw, "✓ Seeding complete in %s\n", s.FinishedAt.Sub(s.StartedAt).Round(time.Millisecond))
	}

	return tw.Flush()
}

// Log emits the summary as one structured log event
func (s *RunSummary) Log(ctx context.Context) {
	event := observability.LoggerFromContext(ctx).Info()
	for _, c := range s.Categories {
		event = event.
			Int(c.Category+"_inserted", c.Inserted).
			Int(c.Category+"_skipped", c.Skipped)
	}
	if s.hasCategory(CategoryPatients) {
		event = event.Int("uids_assigned", s.UIDsAssigned).Int("uids_backfilled", s.UIDsBackfilled)
	}
	if s.Reconcile != nil {
		event = event.Int("columns_added", len(s.Reconcile.Added)).Int("ddl_skipped", len(s.Reconcile.Skipped))
	}
	event.Msg("run summary")
}

func (s *RunSummary) hasCategory(category string) bool {
	_, ok := s.Tally(category)
	return ok
}

// Event converts the summary into the run-completed notification
func (s *RunSummary) Event(runID string, runErr error) *entities.SeedRunEvent {
	event := &entities.SeedRunEvent{
		RunID:          runID,
		Command:        s.Command,
		Schema:         s.Schema,
		Status:         entities.RunStatusSucceeded,
		Categories:     make([]entities.CategoryCount, 0, len(s.Categories)),
		UIDsAssigned:   s.UIDsAssigned,
		UIDsBackfilled: s.UIDsBackfilled,
		StartedAt:      s.StartedAt,
		FinishedAt:     s.FinishedAt,
	}
	if runErr != nil {
		event.Status = entities.RunStatusFailed
		event.Error = runErr.Error()
	}
	for _, c := range s.Categories {
		event.Categories = append(event.Categories, entities.CategoryCount{
			Category: c.Category,
			Table:    c.Table,
			Inserted: c.Inserted,
			Skipped:  c.Skipped,
		})
	}
	if s.Reconcile != nil {
		event.ColumnsAdded = s.Reconcile.Added
		event.DDLSkipped = len(s.Reconcile.Skipped)
	}
	return event
}
