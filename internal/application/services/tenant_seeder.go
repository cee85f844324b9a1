package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medora/tenant-seeder/internal/domain/entities"
	"github.com/medora/tenant-seeder/internal/infrastructure/observability"
)

// TenantSeeder fills the demo doctors and patients and maintains patient_uid
type TenantSeeder struct {
	deps       SeederDeps
	reconciler *SchemaReconciler
	engine     *UpsertEngine
	uids       *PatientUIDService
}

// NewTenantSeeder creates a tenant seeder
func NewTenantSeeder(deps SeederDeps) *TenantSeeder {
	deps = deps.withDefaults()
	return &TenantSeeder{
		deps:       deps,
		reconciler: NewSchemaReconciler(deps.Schema, deps.Metrics),
		engine:     NewUpsertEngine(deps.Schema, deps.Seeds),
		uids:       NewPatientUIDService(deps.Seeds, deps.Clock),
	}
}

// Run reconciles the patient columns, seeds doctors then patients, and
// finishes with the patient_uid backfill sweep
func (s *TenantSeeder) Run(ctx context.Context, tenantSchema string) (*RunSummary, error) {
	summary := NewRunSummary(CommandSeedTenant, tenantSchema)
	defer summary.Finish()
	logger := observability.LoggerFromContext(ctx)

	summary.Reconcile = s.reconciler.Reconcile(ctx, TenantColumns(), TenantIndexes())

	// Presence is read again rather than trusted from the reconcile report
	uidEnabled, err := s.deps.Schema.ColumnExists(ctx, entities.TablePatients, "patient_uid")
	if err != nil {
		return summary, fmt.Errorf("checking patient_uid column: %w", err)
	}
	if !uidEnabled {
		logger.Warn().Msg("⚠ patients.patient_uid is absent, uid assignment and backfill skipped")
	}

	pool := NewDoctorPool(s.deps.RandomSeed)
	doctorOpts := SeedOptions{
		Prepare: func(_ context.Context, row entities.Row) (entities.Row, error) {
			// Dropped by the column filter on schemas without platform_doctor_id
			return row.With("platform_doctor_id", uuid.NewString()), nil
		},
		OnResolved: func(_ context.Context, id int64, _ bool) error {
			pool.Add(id)
			return nil
		},
	}
	if err := seedCategory(ctx, s.engine, summary, s.deps.Metrics, CategoryDoctors, rowsOf(s.deps.Data.Doctors), doctorOpts); err != nil {
		return summary, err
	}
	if pool.Len() == 0 {
		logger.Warn().Msg("⚠ no doctors resolved, new patients get no doctor_id")
	}

	patients := make([]entities.Patient, len(s.deps.Data.Patients))
	for i, p := range s.deps.Data.Patients {
		p.IsActive = true
		patients[i] = p
	}
	patientOpts := SeedOptions{
		Prepare: func(_ context.Context, row entities.Row) (entities.Row, error) {
			if id := pool.Pick(); id != nil {
				row = row.With("doctor_id", *id)
			}
			return row.With("created_at", s.deps.Clock()), nil
		},
		OnResolved: func(ctx context.Context, id int64, inserted bool) error {
			if !inserted || !uidEnabled {
				return nil
			}
			ok, err := s.uids.Assign(ctx, id)
			if err != nil {
				return err
			}
			if ok {
				summary.UIDsAssigned++
			}
			return nil
		},
	}
	if err := seedCategory(ctx, s.engine, summary, s.deps.Metrics, CategoryPatients, rowsOf(patients), patientOpts); err != nil {
		return summary, err
	}
	s.deps.Metrics.RecordUIDs(ctx, "insert", summary.UIDsAssigned)

	if uidEnabled {
		ctx, span := observability.StartSpan(ctx, "seed.patient_uid_backfill")
		n, err := s.uids.Backfill(ctx)
		summary.UIDsBackfilled = n
		s.deps.Metrics.RecordUIDs(ctx, "backfill", n)
		if err != nil {
			observability.RecordError(span, err)
			span.End()
			logger.Error().Err(err).Int("backfilled", n).Msg("✗ patient_uid backfill failed")
			return summary, fmt.Errorf("backfilling patient_uid: %w", err)
		}
		span.End()
	}

	return summary, nil
}
