package services

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/medora/tenant-seeder/internal/domain/entities"
	"github.com/medora/tenant-seeder/internal/domain/repositories"
	"github.com/medora/tenant-seeder/internal/infrastructure/observability"
	"github.com/medora/tenant-seeder/internal/seeddata"
)

// Command names, also used as the summary heading
const (
	CommandSeedCatalog = "seed-catalog"
	CommandSeedTenant  = "seed-tenant"
)

// SeederDeps wires a seeder to one tenant connection
type SeederDeps struct {
	Schema  repositories.SchemaRepository
	Seeds   repositories.SeedRepository
	Data    *seeddata.Bundle
	Metrics *observability.SeedMetrics

	// Clock defaults to time.Now
	Clock func() time.Time
	// RandomSeed feeds the doctor assignment; zero means time-based
	RandomSeed int64
}

func (d SeederDeps) withDefaults() SeederDeps {
	if d.Data == nil {
		d.Data = seeddata.Default()
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	return d
}

type rowSource interface {
	Row() entities.Row
}

func rowsOf[T rowSource](items []T) []entities.Row {
	rows := make([]entities.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, item.Row())
	}
	return rows
}

// seedCategory runs one category inside its own span and records its tally,
// partial or not, on the summary
func seedCategory(ctx context.Context, engine *UpsertEngine, summary *RunSummary, metrics *observability.SeedMetrics, category string, rows []entities.Row, opts SeedOptions) error {
	table := ""
	if len(rows) > 0 {
		table = rows[0].Table
	}

	ctx, span := observability.StartSpan(ctx, "seed."+category,
		attribute.String("db.sql.table", table),
		attribute.Int("seed.records", len(rows)),
	)
	defer span.End()

	tally, err := engine.Seed(ctx, category, rows, opts)
	summary.Add(ctx, metrics, category, table, tally)
	if err != nil {
		observability.RecordError(span, err)
		observability.LoggerFromContext(ctx).Error().
			Err(err).
			Str("category", category).
			Int("inserted", tally.Inserted).
			Int("skipped", tally.Skipped).
			Msg("✗ seeding failed")
		return fmt.Errorf("seeding %s: %w", category, err)
	}
	return nil
}

// CatalogSeeder fills the medicine, procedure and lab test catalogs
type CatalogSeeder struct {
	deps       SeederDeps
	reconciler *SchemaReconciler
	engine     *UpsertEngine
}

// NewCatalogSeeder creates a catalog seeder
func NewCatalogSeeder(deps SeederDeps) *CatalogSeeder {
	deps = deps.withDefaults()
	return &CatalogSeeder{
		deps:       deps,
		reconciler: NewSchemaReconciler(deps.Schema, deps.Metrics),
		engine:     NewUpsertEngine(deps.Schema, deps.Seeds),
	}
}

// Run reconciles the catalog columns and seeds each catalog in turn. The
// summary is returned even on failure so the partial progress can be shown.
func (s *CatalogSeeder) Run(ctx context.Context, tenantSchema string) (*RunSummary, error) {
	summary := NewRunSummary(CommandSeedCatalog, tenantSchema)
	defer summary.Finish()

	summary.Reconcile = s.reconciler.Reconcile(ctx, CatalogColumns(), nil)

	steps := []struct {
		category string
		rows     []entities.Row
	}{
		{CategoryMedicines, rowsOf(s.deps.Data.Medicines)},
		{CategoryProcedures, rowsOf(s.deps.Data.Procedures)},
		{CategoryLabTests, rowsOf(s.deps.Data.LabTests)},
	}
	for _, step := range steps {
		if err := seedCategory(ctx, s.engine, summary, s.deps.Metrics, step.category, step.rows, SeedOptions{}); err != nil {
			return summary, err
		}
	}

	return summary, nil
}
