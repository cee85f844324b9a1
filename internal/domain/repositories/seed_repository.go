package repositories

import (
	"context"

	"github.com/medora/tenant-seeder/internal/domain/entities"
)

// SeedRepository performs the data statements of a seeding run
type SeedRepository interface {
	// FindIDByKey looks up the id of the first row whose keyColumn equals key
	FindIDByKey(ctx context.Context, table, keyColumn, key string) (id int64, found bool, err error)

	// Insert writes one row built from fields and returns its generated id
	Insert(ctx context.Context, table string, fields []entities.Field) (int64, error)

	// SetPatientUID stores uid on the patient row unless it already has one.
	// It reports whether the row was updated.
	SetPatientUID(ctx context.Context, id int64, uid string) (bool, error)

	// PatientIDsMissingUID lists patients whose patient_uid is NULL or empty, ordered by id
	PatientIDsMissingUID(ctx context.Context) ([]int64, error)
}
