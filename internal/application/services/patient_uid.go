package services

import (
	"context"
	"fmt"
	"time"

	"github.com/medora/tenant-seeder/internal/domain/repositories"
	"github.com/medora/tenant-seeder/internal/infrastructure/observability"
)

// FormatPatientUID renders the human-readable patient identifier,
// e.g. PT-2026-000042. Ids above 999999 widen the numeric part.
func FormatPatientUID(year int, id int64) string {
	return fmt.Sprintf("PT-%04d-%06d", year, id)
}

// PatientUIDService derives patient_uid from the row id once it is known
type PatientUIDService struct {
	seeds repositories.SeedRepository
	now   func() time.Time
}

// NewPatientUIDService creates a uid service; now defaults to time.Now
func NewPatientUIDService(seeds repositories.SeedRepository, now func() time.Time) *PatientUIDService {
	if now == nil {
		now = time.Now
	}
	return &PatientUIDService{seeds: seeds, now: now}
}

// Assign writes the uid for patient id unless the row already has one.
// The year is the wall-clock year at the moment of the call.
func (s *PatientUIDService) Assign(ctx context.Context, id int64) (bool, error) {
	return s.seeds.SetPatientUID(ctx, id, FormatPatientUID(s.now().Year(), id))
}

// Backfill assigns uids to every patient still lacking one, in id order.
// It returns the number of rows updated.
func (s *PatientUIDService) Backfill(ctx context.Context) (int, error) {
	ids, err := s.seeds.PatientIDsMissingUID(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, id := range ids {
		ok, err := s.Assign(ctx, id)
		if err != nil {
			return updated, err
		}
		if ok {
			updated++
		}
	}

	observability.LoggerFromContext(ctx).Info().
		Int("candidates", len(ids)).
		Int("updated", updated).
		Msg("patient_uid backfill complete")
	return updated, nil
}
