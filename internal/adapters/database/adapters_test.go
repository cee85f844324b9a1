package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medora/tenant-seeder/internal/domain/entities"
	apperrors "github.com/medora/tenant-seeder/pkg/errors"
)

func setupMockDB(t *testing.T, driver string) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, driver), mock
}

func TestSchemaAdapter_ColumnExists(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "column present", count: 1, want: true},
		{name: "column absent", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t, "mysql")
			repo, err := NewSchemaAdapter(db, "mysql")
			require.NoError(t, err)

			mock.ExpectQuery(`(?s)SELECT COUNT\(\*\) FROM .information_schema.\..COLUMNS..*TABLE_SCHEMA = DATABASE\(\)`).
				WithArgs("medicines_catalog", "medicine_code").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := repo.ColumnExists(context.Background(), "medicines_catalog", "medicine_code")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSchemaAdapter_ColumnExistsPropagatesErrors(t *testing.T) {
	db, mock := setupMockDB(t, "mysql")
	repo, err := NewSchemaAdapter(db, "mysql")
	require.NoError(t, err)

	mock.ExpectQuery(`information_schema`).WillReturnError(errors.New("access denied"))

	_, err = repo.ColumnExists(context.Background(), "patients", "patient_uid")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeSchema))
}

func TestSchemaAdapter_Columns(t *testing.T) {
	db, mock := setupMockDB(t, "mysql")
	repo, err := NewSchemaAdapter(db, "mysql")
	require.NoError(t, err)

	mock.ExpectQuery(`(?s)SELECT .COLUMN_NAME. FROM .information_schema.\..COLUMNS.`).
		WithArgs("lab_catalogue").
		WillReturnRows(sqlmock.NewRows([]string{"COLUMN_NAME"}).AddRow("id").AddRow("name").AddRow("category"))

	cols, err := repo.Columns(context.Background(), "lab_catalogue")
	require.NoError(t, err)
	assert.True(t, cols.Has("name"))
	assert.True(t, cols.Has("category"))
	assert.False(t, cols.Has("test_code"))
}

func TestSchemaAdapter_PostgresIntrospection(t *testing.T) {
	db, mock := setupMockDB(t, "postgres")
	repo, err := NewSchemaAdapter(db, "postgres")
	require.NoError(t, err)

	mock.ExpectQuery(`(?s)FROM "information_schema"\."columns".*table_schema = current_schema\(\)`).
		WithArgs("patients", "patient_uid").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := repo.ColumnExists(context.Background(), "patients", "patient_uid")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSchemaAdapter_IndexExists(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		pattern string
	}{
		{name: "mysql", driver: "mysql", pattern: `(?s)SELECT COUNT\(\*\) FROM .information_schema.\..STATISTICS..*TABLE_SCHEMA = DATABASE\(\)`},
		{name: "postgres", driver: "postgres", pattern: `(?s)FROM "pg_catalog"\."pg_indexes".*schemaname = current_schema\(\)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t, tt.driver)
			repo, err := NewSchemaAdapter(db, tt.driver)
			require.NoError(t, err)

			mock.ExpectQuery(tt.pattern).
				WithArgs("patients", "uq_patients_patient_uid").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

			ok, err := repo.IndexExists(context.Background(), "patients", "uq_patients_patient_uid")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSchemaAdapter_AddColumnAndIndex(t *testing.T) {
	db, mock := setupMockDB(t, "mysql")
	repo, err := NewSchemaAdapter(db, "mysql")
	require.NoError(t, err)

	mock.ExpectExec("ALTER TABLE `patients` ADD COLUMN `patient_uid` VARCHAR\\(20\\) NULL").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("ALTER TABLE `patients` ADD UNIQUE INDEX `uq_patients_patient_uid` \\(`patient_uid`\\)").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.AddColumn(context.Background(), "patients", "patient_uid", "VARCHAR(20) NULL"))
	require.NoError(t, repo.AddUniqueIndex(context.Background(), "patients", "uq_patients_patient_uid", "patient_uid"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchemaAdapter_AddColumnRejectsBadIdentifiers(t *testing.T) {
	db, mock := setupMockDB(t, "mysql")
	repo, err := NewSchemaAdapter(db, "mysql")
	require.NoError(t, err)

	err = repo.AddColumn(context.Background(), "patients; DROP TABLE doctors", "x", "INT")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeSchema))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedAdapter_FindIDByKey(t *testing.T) {
	db, mock := setupMockDB(t, "mysql")
	repo, err := NewSeedAdapter(db, "mysql")
	require.NoError(t, err)

	mock.ExpectQuery("SELECT `id` FROM `doctors` WHERE \\(`email` = \\?\\) ORDER BY `id` ASC LIMIT \\?").
		WithArgs("amit.sharma@hospitaltest.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectQuery("SELECT `id` FROM `doctors`").
		WithArgs("nobody@hospitaltest.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	id, found, err := repo.FindIDByKey(context.Background(), "doctors", "email", "amit.sharma@hospitaltest.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(12), id)

	_, found, err = repo.FindIDByKey(context.Background(), "doctors", "email", "nobody@hospitaltest.com")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedAdapter_InsertUsesOnlyGivenColumns(t *testing.T) {
	db, mock := setupMockDB(t, "mysql")
	repo, err := NewSeedAdapter(db, "mysql")
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO `medicines_catalog` \\(`form`, `name`\\) VALUES \\(\\?, \\?\\)").
		WithArgs("Tablet", "Paracetamol 500mg").
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := repo.Insert(context.Background(), entities.TableMedicines, []entities.Field{
		{Column: "name", Value: "Paracetamol 500mg"},
		{Column: "form", Value: "Tablet"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedAdapter_InsertFailureIsDataError(t *testing.T) {
	db, mock := setupMockDB(t, "mysql")
	repo, err := NewSeedAdapter(db, "mysql")
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO `doctors`").WillReturnError(errors.New("Error 1054: Unknown column"))

	_, err = repo.Insert(context.Background(), entities.TableDoctors, []entities.Field{{Column: "email", Value: "x@y.z"}})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeData))
}

func TestSeedAdapter_PostgresInsertReturningID(t *testing.T) {
	db, mock := setupMockDB(t, "postgres")
	repo, err := NewSeedAdapter(db, "postgres")
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO "doctors" \("email", "name"\) VALUES \(\$1, \$2\) RETURNING "id"`).
		WithArgs("amit.sharma@hospitaltest.com", "Dr. Amit Sharma").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	id, err := repo.Insert(context.Background(), entities.TableDoctors, []entities.Field{
		{Column: "name", Value: "Dr. Amit Sharma"},
		{Column: "email", Value: "amit.sharma@hospitaltest.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

func TestSeedAdapter_SetPatientUIDOnlyWhenMissing(t *testing.T) {
	db, mock := setupMockDB(t, "mysql")
	repo, err := NewSeedAdapter(db, "mysql")
	require.NoError(t, err)

	mock.ExpectExec("(?s)UPDATE `patients` SET `patient_uid`\\s*=\\s*\\?.*`patient_uid` IS NULL").
		WithArgs("PT-2026-000042", int64(42), "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `patients`").
		WithArgs("PT-2026-000043", int64(43), "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.SetPatientUID(context.Background(), 42, "PT-2026-000042")
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = repo.SetPatientUID(context.Background(), 43, "PT-2026-000043")
	require.NoError(t, err)
	assert.False(t, updated, "rows that already carry a uid are left untouched")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedAdapter_PatientIDsMissingUID(t *testing.T) {
	db, mock := setupMockDB(t, "mysql")
	repo, err := NewSeedAdapter(db, "mysql")
	require.NoError(t, err)

	mock.ExpectQuery("(?s)SELECT `id` FROM `patients` WHERE .*ORDER BY `id` ASC").
		WithArgs("").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3).AddRow(5).AddRow(8))

	ids, err := repo.PatientIDsMissingUID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5, 8}, ids)
}

func TestNewAdapters_RejectUnknownDriver(t *testing.T) {
	db, _ := setupMockDB(t, "sqlite3")

	_, err := NewSeedAdapter(db, "sqlite3")
	assert.Error(t, err)
	_, err = NewSchemaAdapter(db, "sqlite3")
	assert.Error(t, err)
}
