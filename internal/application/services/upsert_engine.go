package services

import (
	"context"
	"fmt"

	"github.com/medora/tenant-seeder/internal/domain/entities"
	"github.com/medora/tenant-seeder/internal/domain/repositories"
	"github.com/medora/tenant-seeder/internal/infrastructure/observability"
	apperrors "github.com/medora/tenant-seeder/pkg/errors"
)

// Tally counts the outcome of seeding one category
type Tally struct {
	Inserted int
	Skipped  int
}

// Total is the number of records processed
func (t Tally) Total() int {
	return t.Inserted + t.Skipped
}

// SeedOptions customizes a Seed call
type SeedOptions struct {
	// Prepare adjusts a row just before it is inserted. It is not called for
	// rows that already exist.
	Prepare func(ctx context.Context, row entities.Row) (entities.Row, error)

	// OnResolved is called with the id of every record, existing or new
	OnResolved func(ctx context.Context, id int64, inserted bool) error
}

// UpsertEngine inserts reference rows whose natural key is not yet present
type UpsertEngine struct {
	schema repositories.SchemaRepository
	seeds  repositories.SeedRepository
}

// NewUpsertEngine creates a new upsert engine
func NewUpsertEngine(schema repositories.SchemaRepository, seeds repositories.SeedRepository) *UpsertEngine {
	return &UpsertEngine{schema: schema, seeds: seeds}
}

// Seed processes rows in order, one statement at a time, so a duplicate key
// within rows is seen by the lookup of the later record. All rows must target
// the same table. The columns present on that table are read once; every
// INSERT carries only those columns.
func (e *UpsertEngine) Seed(ctx context.Context, category string, rows []entities.Row, opts SeedOptions) (Tally, error) {
	var tally Tally
	if len(rows) == 0 {
		return tally, nil
	}

	table := rows[0].Table
	keyColumn := rows[0].KeyColumn
	logger := observability.LoggerFromContext(ctx).With().
		Str("category", category).
		Str("table", table).
		Logger()

	columns, err := e.schema.Columns(ctx, table)
	if err != nil {
		return tally, err
	}
	if !columns.Has(keyColumn) {
		return tally, apperrors.NewSchemaError(
			fmt.Sprintf("table %s has no natural key column %s", table, keyColumn), nil)
	}
	if missing := rows[0].Missing(columns); len(missing) > 0 {
		logger.Info().Strs("columns", missing).Msg("columns absent from schema, omitted from inserts")
	}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return tally, err
		}
		if row.Table != table || row.KeyColumn != keyColumn {
			return tally, apperrors.NewInternalError(
				fmt.Sprintf("%s record %d targets %s.%s, expected %s.%s", category, i, row.Table, row.KeyColumn, table, keyColumn), nil)
		}

		id, found, err := e.seeds.FindIDByKey(ctx, table, keyColumn, row.Key)
		if err != nil {
			return tally, err
		}

		inserted := false
		if found {
			tally.Skipped++
			logger.Debug().Str("key", row.Key).Int64("id", id).Msg("exists, skipped")
		} else {
			if opts.Prepare != nil {
				if row, err = opts.Prepare(ctx, row); err != nil {
					return tally, err
				}
			}
			id, err = e.seeds.Insert(ctx, table, row.Present(columns))
			if err != nil {
				return tally, err
			}
			inserted = true
			tally.Inserted++
			logger.Debug().Str("key", row.Key).Int64("id", id).Msg("inserted")
		}

		if opts.OnResolved != nil {
			if err := opts.OnResolved(ctx, id, inserted); err != nil {
				return tally, err
			}
		}
	}

	logger.Info().
		Int("inserted", tally.Inserted).
		Int("skipped", tally.Skipped).
		Msg("✓ category seeded")
	return tally, nil
}
