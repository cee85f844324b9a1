package database

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/medora/tenant-seeder/internal/domain/entities"
	"github.com/medora/tenant-seeder/internal/domain/repositories"
	apperrors "github.com/medora/tenant-seeder/pkg/errors"
)

// SchemaAdapter implements SchemaRepository over information_schema
type SchemaAdapter struct {
	exec    Executor
	dialect dialect
}

// NewSchemaAdapter creates a new schema adapter for the given driver
func NewSchemaAdapter(exec Executor, driver string) (repositories.SchemaRepository, error) {
	d, err := newDialect(driver)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create schema adapter", err)
	}
	return &SchemaAdapter{exec: exec, dialect: d}, nil
}

// ColumnExists reports whether table has column. Both names are bound
// parameters, never interpolated.
func (a *SchemaAdapter) ColumnExists(ctx context.Context, table, column string) (bool, error) {
	query, args, err := a.dialect.builder.
		From(a.dialect.columnsTable).
		Select(goqu.COUNT("*")).
		Where(
			a.dialect.schemaFilter,
			goqu.C(a.dialect.tableCol).Eq(table),
			goqu.C(a.dialect.columnCol).Eq(column),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build introspection query", err)
	}

	var count int
	if err := a.exec.GetContext(ctx, &count, query, args...); err != nil {
		return false, apperrors.NewSchemaError(fmt.Sprintf("failed to check column %s.%s", table, column), err)
	}
	return count > 0, nil
}

// Columns returns the columns currently present on table
func (a *SchemaAdapter) Columns(ctx context.Context, table string) (entities.ColumnSet, error) {
	query, args, err := a.dialect.builder.
		From(a.dialect.columnsTable).
		Select(goqu.C(a.dialect.columnCol)).
		Where(
			a.dialect.schemaFilter,
			goqu.C(a.dialect.tableCol).Eq(table),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build column listing query", err)
	}

	var names []string
	if err := a.exec.SelectContext(ctx, &names, query, args...); err != nil {
		return nil, apperrors.NewSchemaError(fmt.Sprintf("failed to list columns of %s", table), err)
	}
	return entities.NewColumnSet(names...), nil
}

// IndexExists reports whether table has an index named index. MySQL lists
// one STATISTICS row per indexed column, so any count above zero is a hit.
func (a *SchemaAdapter) IndexExists(ctx context.Context, table, index string) (bool, error) {
	query, args, err := a.dialect.builder.
		From(a.dialect.indexTable).
		Select(goqu.COUNT("*")).
		Where(
			a.dialect.indexSchemaFilter,
			goqu.C(a.dialect.indexTableCol).Eq(table),
			goqu.C(a.dialect.indexNameCol).Eq(index),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build index introspection query", err)
	}

	var count int
	if err := a.exec.GetContext(ctx, &count, query, args...); err != nil {
		return false, apperrors.NewSchemaError(fmt.Sprintf("failed to check index %s on %s", index, table), err)
	}
	return count > 0, nil
}

// AddColumn adds column to table. definition is a developer-supplied type and default clause.
func (a *SchemaAdapter) AddColumn(ctx context.Context, table, column, definition string) error {
	t, err := a.dialect.ident(table)
	if err != nil {
		return apperrors.NewSchemaError("refusing to alter table", err)
	}
	c, err := a.dialect.ident(column)
	if err != nil {
		return apperrors.NewSchemaError("refusing to add column", err)
	}

	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", t, c, definition)
	if _, err := a.exec.ExecContext(ctx, stmt); err != nil {
		return apperrors.NewSchemaError(fmt.Sprintf("failed to add column %s.%s", table, column), err)
	}
	return nil
}

// AddUniqueIndex creates a unique index on table(column)
func (a *SchemaAdapter) AddUniqueIndex(ctx context.Context, table, index, column string) error {
	t, err := a.dialect.ident(table)
	if err != nil {
		return apperrors.NewSchemaError("refusing to index table", err)
	}
	i, err := a.dialect.ident(index)
	if err != nil {
		return apperrors.NewSchemaError("refusing to create index", err)
	}
	c, err := a.dialect.ident(column)
	if err != nil {
		return apperrors.NewSchemaError("refusing to index column", err)
	}

	var stmt string
	if a.dialect.name == "postgres" {
		stmt = fmt.Sprintf("CREATE UNIQUE INDEX %s ON %s (%s)", i, t, c)
	} else {
		stmt = fmt.Sprintf("ALTER TABLE %s ADD UNIQUE INDEX %s (%s)", t, i, c)
	}
	if _, err := a.exec.ExecContext(ctx, stmt); err != nil {
		return apperrors.NewSchemaError(fmt.Sprintf("failed to add unique index %s on %s.%s", index, table, column), err)
	}
	return nil
}
