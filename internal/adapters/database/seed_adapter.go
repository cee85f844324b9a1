package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/medora/tenant-seeder/internal/domain/entities"
	"github.com/medora/tenant-seeder/internal/domain/repositories"
	apperrors "github.com/medora/tenant-seeder/pkg/errors"
)

// SeedAdapter implements SeedRepository
type SeedAdapter struct {
	exec    Executor
	dialect dialect
}

// NewSeedAdapter creates a new seed adapter for the given driver
func NewSeedAdapter(exec Executor, driver string) (repositories.SeedRepository, error) {
	d, err := newDialect(driver)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create seed adapter", err)
	}
	return &SeedAdapter{exec: exec, dialect: d}, nil
}

// FindIDByKey looks up an existing row by its natural key
func (a *SeedAdapter) FindIDByKey(ctx context.Context, table, keyColumn, key string) (int64, bool, error) {
	query, args, err := a.dialect.builder.
		From(table).
		Select("id").
		Where(goqu.C(keyColumn).Eq(key)).
		Order(goqu.C("id").Asc()).
		Limit(1).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, false, apperrors.NewInternalError("failed to build lookup query", err)
	}

	var id int64
	err = a.exec.GetContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, apperrors.NewDataError(fmt.Sprintf("failed to look up %s by %s", table, keyColumn), err)
	}
	return id, true, nil
}

// Insert writes one row and returns its generated id
func (a *SeedAdapter) Insert(ctx context.Context, table string, fields []entities.Field) (int64, error) {
	if len(fields) == 0 {
		return 0, apperrors.NewInternalError(fmt.Sprintf("refusing to insert an empty %s row", table), nil)
	}

	record := make(goqu.Record, len(fields))
	for _, f := range fields {
		record[f.Column] = f.Value
	}

	ds := a.dialect.builder.Insert(table).Rows(record).Prepared(true)
	if a.dialect.returningIDs {
		ds = ds.Returning("id")
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build insert query", err)
	}

	if a.dialect.returningIDs {
		var id int64
		if err := a.exec.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, apperrors.NewDataError(fmt.Sprintf("failed to insert %s row", table), err)
		}
		return id, nil
	}

	result, err := a.exec.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, apperrors.NewDataError(fmt.Sprintf("failed to insert %s row", table), err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperrors.NewDataError(fmt.Sprintf("failed to read id of new %s row", table), err)
	}
	return id, nil
}

// SetPatientUID writes uid only where the row has none, so an assigned
// identifier is never regenerated
func (a *SeedAdapter) SetPatientUID(ctx context.Context, id int64, uid string) (bool, error) {
	query, args, err := a.dialect.builder.
		Update(entities.TablePatients).
		Set(goqu.Record{"patient_uid": uid}).
		Where(
			goqu.C("id").Eq(id),
			goqu.Or(goqu.C("patient_uid").IsNull(), goqu.C("patient_uid").Eq("")),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build patient uid update", err)
	}

	result, err := a.exec.ExecContext(ctx, query, args...)
	if err != nil {
		return false, apperrors.NewDataError(fmt.Sprintf("failed to set patient_uid on patient %d", id), err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.NewDataError("failed to get rows affected", err)
	}
	return rowsAffected > 0, nil
}

// PatientIDsMissingUID lists patients without a patient_uid, oldest first
func (a *SeedAdapter) PatientIDsMissingUID(ctx context.Context) ([]int64, error) {
	query, args, err := a.dialect.builder.
		From(entities.TablePatients).
		Select("id").
		Where(goqu.Or(goqu.C("patient_uid").IsNull(), goqu.C("patient_uid").Eq(""))).
		Order(goqu.C("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build backfill query", err)
	}

	var ids []int64
	if err := a.exec.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, apperrors.NewDataError("failed to list patients missing patient_uid", err)
	}
	return ids, nil
}
