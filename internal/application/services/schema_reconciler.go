package services

import (
	"context"
	"fmt"

	"github.com/medora/tenant-seeder/internal/domain/entities"
	"github.com/medora/tenant-seeder/internal/domain/repositories"
	"github.com/medora/tenant-seeder/internal/infrastructure/observability"
)

// PatientUIDIndex is the unique index backing patients.patient_uid
const PatientUIDIndex = "uq_patients_patient_uid"

// ColumnSpec is an optional column a tenant schema may be missing
type ColumnSpec struct {
	Table      string
	Column     string
	Definition string
}

// IndexSpec is a unique index created alongside a newly added column
type IndexSpec struct {
	Table  string
	Name   string
	Column string
}

// ReconcileReport describes what one reconciliation pass did. Nothing in it is
// authoritative: the upsert engine re-reads the real columns afterwards.
type ReconcileReport struct {
	Present int
	Added   []string
	Skipped []string
}

// CatalogColumns lists the optional catalog columns added by later migrations
func CatalogColumns() []ColumnSpec {
	return []ColumnSpec{
		{entities.TableMedicines, "medicine_code", "VARCHAR(50) NULL"},
		{entities.TableMedicines, "form", "VARCHAR(50) NULL"},
		{entities.TableMedicines, "strength", "VARCHAR(50) NULL"},
		{entities.TableMedicines, "default_frequency", "VARCHAR(100) NULL"},
		{entities.TableMedicines, "duration", "VARCHAR(50) NULL"},
		{entities.TableMedicines, "route", "VARCHAR(50) NULL"},
		{entities.TableLabTests, "test_code", "VARCHAR(50) NULL"},
		{entities.TableProcedures, "procedure_code", "VARCHAR(50) NULL"},
		{entities.TableProcedures, "department", "VARCHAR(100) NULL"},
		{entities.TableProcedures, "duration", "VARCHAR(50) NULL"},
	}
}

// TenantColumns lists the optional patient columns added by later migrations
func TenantColumns() []ColumnSpec {
	return []ColumnSpec{
		{entities.TablePatients, "age", "INT NULL"},
		{entities.TablePatients, "gender", "VARCHAR(20) NULL"},
		{entities.TablePatients, "state", "VARCHAR(100) NULL"},
		{entities.TablePatients, "address", "TEXT NULL"},
		{entities.TablePatients, "patient_uid", "VARCHAR(20) NULL"},
		{entities.TablePatients, "notes", "TEXT NULL"},
		{entities.TablePatients, "doctor_id", "INT NULL"},
		{entities.TablePatients, "is_active", "BOOLEAN NOT NULL DEFAULT TRUE"},
	}
}

// TenantIndexes lists the indexes attempted when their column is added
func TenantIndexes() []IndexSpec {
	return []IndexSpec{
		{Table: entities.TablePatients, Name: PatientUIDIndex, Column: "patient_uid"},
	}
}

// Advisory runs a schema change whose failure is acceptable: the object may
// already exist or the user may lack DDL rights. Failures are logged and
// reported as false, never returned.
func Advisory(ctx context.Context, op string, fn func(context.Context) error) bool {
	if err := fn(ctx); err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("op", op).
			Msg("⚠ schema change skipped")
		return false
	}
	return true
}

// SchemaReconciler adds missing optional columns on a best-effort basis
type SchemaReconciler struct {
	schema  repositories.SchemaRepository
	metrics *observability.SeedMetrics
}

// NewSchemaReconciler creates a reconciler; metrics may be nil
func NewSchemaReconciler(schema repositories.SchemaRepository, metrics *observability.SeedMetrics) *SchemaReconciler {
	return &SchemaReconciler{schema: schema, metrics: metrics}
}

// Reconcile ensures each column exists, adding the absent ones, then ensures
// each index whose column is now present. Objects already in place cost only
// an introspection query, so a second pass over the same schema issues no DDL.
func (r *SchemaReconciler) Reconcile(ctx context.Context, columns []ColumnSpec, indexes []IndexSpec) *ReconcileReport {
	report := &ReconcileReport{}
	available := make(map[string]bool)
	logger := observability.LoggerFromContext(ctx)

	for _, c := range columns {
		target := c.Table + "." + c.Column

		exists, err := r.schema.ColumnExists(ctx, c.Table, c.Column)
		if err != nil {
			logger.Warn().Err(err).Str("column", target).Msg("⚠ column check failed, skipping")
			report.Skipped = append(report.Skipped, "check "+target)
			r.metrics.RecordDDLSkipped(ctx, "check_column")
			continue
		}
		if exists {
			report.Present++
			available[target] = true
			continue
		}

		ok := Advisory(ctx, "add column "+target, func(ctx context.Context) error {
			return r.schema.AddColumn(ctx, c.Table, c.Column, c.Definition)
		})
		if !ok {
			report.Skipped = append(report.Skipped, "add column "+target)
			r.metrics.RecordDDLSkipped(ctx, "add_column")
			continue
		}
		available[target] = true
		report.Added = append(report.Added, target)
		logger.Info().Str("column", target).Msg("added column")
	}

	for _, idx := range indexes {
		if !available[idx.Table+"."+idx.Column] {
			continue
		}

		// A failed check falls through to the attempt; "already exists" is swallowed there
		exists, err := r.schema.IndexExists(ctx, idx.Table, idx.Name)
		if err != nil {
			logger.Warn().Err(err).Str("index", idx.Name).Msg("⚠ index check failed, attempting anyway")
		}
		if exists {
			report.Present++
			continue
		}

		op := fmt.Sprintf("add unique index %s on %s(%s)", idx.Name, idx.Table, idx.Column)
		ok := Advisory(ctx, op, func(ctx context.Context) error {
			return r.schema.AddUniqueIndex(ctx, idx.Table, idx.Name, idx.Column)
		})
		if !ok {
			report.Skipped = append(report.Skipped, op)
			r.metrics.RecordDDLSkipped(ctx, "add_index")
			continue
		}
		report.Added = append(report.Added, idx.Table+"."+idx.Name)
	}

	return report
}
