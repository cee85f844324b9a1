package repositories

import (
	"context"

	"github.com/medora/tenant-seeder/internal/domain/entities"
)

// SchemaRepository introspects and alters the connected tenant schema.
// Table and column identifiers are developer-supplied constants, never user input.
type SchemaRepository interface {
	// ColumnExists reports whether table has a column named column
	ColumnExists(ctx context.Context, table, column string) (bool, error)

	// Columns returns every column currently present on table
	Columns(ctx context.Context, table string) (entities.ColumnSet, error)

	// IndexExists reports whether table has an index named index
	IndexExists(ctx context.Context, table, index string) (bool, error)

	// AddColumn runs ALTER TABLE ... ADD COLUMN
	AddColumn(ctx context.Context, table, column, definition string) error

	// AddUniqueIndex creates a unique index on a single column
	AddUniqueIndex(ctx context.Context, table, index, column string) error
}
