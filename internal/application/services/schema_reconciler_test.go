package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/medora/tenant-seeder/internal/domain/entities"
	apperrors "github.com/medora/tenant-seeder/pkg/errors"
)

// Mocks

type MockSchemaRepo struct {
	mock.Mock
}

func (m *MockSchemaRepo) ColumnExists(ctx context.Context, table, column string) (bool, error) {
	args := m.Called(ctx, table, column)
	return args.Bool(0), args.Error(1)
}

func (m *MockSchemaRepo) Columns(ctx context.Context, table string) (entities.ColumnSet, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entities.ColumnSet), args.Error(1)
}

func (m *MockSchemaRepo) IndexExists(ctx context.Context, table, index string) (bool, error) {
	args := m.Called(ctx, table, index)
	return args.Bool(0), args.Error(1)
}

func (m *MockSchemaRepo) AddColumn(ctx context.Context, table, column, definition string) error {
	args := m.Called(ctx, table, column, definition)
	return args.Error(0)
}

func (m *MockSchemaRepo) AddUniqueIndex(ctx context.Context, table, index, column string) error {
	args := m.Called(ctx, table, index, column)
	return args.Error(0)
}

// Tests

func TestAdvisory(t *testing.T) {
	ctx := context.Background()

	assert.True(t, Advisory(ctx, "noop", func(context.Context) error { return nil }))
	assert.False(t, Advisory(ctx, "denied", func(context.Context) error {
		return errors.New("ALTER command denied")
	}))
}

func TestSchemaReconciler_FailingDDLDoesNotFailReconcile(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSchemaRepo)

	repo.On("ColumnExists", ctx, entities.TablePatients, "age").Return(true, nil)
	repo.On("ColumnExists", ctx, entities.TablePatients, "patient_uid").Return(false, nil)
	repo.On("AddColumn", ctx, entities.TablePatients, "patient_uid", "VARCHAR(20) NULL").
		Return(errors.New("Error 1142: ALTER command denied"))

	report := NewSchemaReconciler(repo, nil).Reconcile(ctx, []ColumnSpec{
		{entities.TablePatients, "age", "INT NULL"},
		{entities.TablePatients, "patient_uid", "VARCHAR(20) NULL"},
	}, TenantIndexes())

	require.NotNil(t, report)
	assert.Equal(t, 1, report.Present)
	assert.Empty(t, report.Added)
	assert.Equal(t, []string{"add column patients.patient_uid"}, report.Skipped)
	repo.AssertNotCalled(t, "AddUniqueIndex", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestSchemaReconciler_IntrospectionFailureSkipsColumn(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSchemaRepo)

	repo.On("ColumnExists", ctx, entities.TableLabTests, "test_code").
		Return(false, apperrors.NewSchemaError("failed to inspect column", errors.New("timeout")))

	report := NewSchemaReconciler(repo, nil).Reconcile(ctx, []ColumnSpec{
		{entities.TableLabTests, "test_code", "VARCHAR(50) NULL"},
	}, nil)

	assert.Equal(t, []string{"check lab_catalogue.test_code"}, report.Skipped)
	repo.AssertNotCalled(t, "AddColumn", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSchemaReconciler_AddsColumnAndIndex(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSchemaRepo)

	repo.On("ColumnExists", ctx, entities.TablePatients, "patient_uid").Return(false, nil)
	repo.On("AddColumn", ctx, entities.TablePatients, "patient_uid", "VARCHAR(20) NULL").Return(nil)
	repo.On("IndexExists", ctx, entities.TablePatients, PatientUIDIndex).Return(false, nil)
	repo.On("AddUniqueIndex", ctx, entities.TablePatients, PatientUIDIndex, "patient_uid").
		Return(errors.New("Error 1061: Duplicate key name"))

	report := NewSchemaReconciler(repo, nil).Reconcile(ctx, []ColumnSpec{
		{entities.TablePatients, "patient_uid", "VARCHAR(20) NULL"},
	}, TenantIndexes())

	assert.Equal(t, []string{"patients.patient_uid"}, report.Added)
	require.Len(t, report.Skipped, 1)
	assert.Contains(t, report.Skipped[0], PatientUIDIndex)
	repo.AssertExpectations(t)
}

func TestSchemaReconciler_IndexesExistingColumnWithoutIndex(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSchemaRepo)

	repo.On("ColumnExists", ctx, entities.TablePatients, "patient_uid").Return(true, nil)
	repo.On("IndexExists", ctx, entities.TablePatients, PatientUIDIndex).Return(false, nil)
	repo.On("AddUniqueIndex", ctx, entities.TablePatients, PatientUIDIndex, "patient_uid").Return(nil)

	report := NewSchemaReconciler(repo, nil).Reconcile(ctx, []ColumnSpec{
		{entities.TablePatients, "patient_uid", "VARCHAR(20) NULL"},
	}, TenantIndexes())

	assert.Equal(t, []string{"patients." + PatientUIDIndex}, report.Added)
	assert.Empty(t, report.Skipped)
	repo.AssertNotCalled(t, "AddColumn", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestSchemaReconciler_ExistingIndexIsLeftAlone(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSchemaRepo)

	repo.On("ColumnExists", ctx, entities.TablePatients, "patient_uid").Return(true, nil)
	repo.On("IndexExists", ctx, entities.TablePatients, PatientUIDIndex).Return(true, nil)

	report := NewSchemaReconciler(repo, nil).Reconcile(ctx, []ColumnSpec{
		{entities.TablePatients, "patient_uid", "VARCHAR(20) NULL"},
	}, TenantIndexes())

	assert.Equal(t, 2, report.Present)
	assert.Empty(t, report.Added)
	repo.AssertNotCalled(t, "AddUniqueIndex", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSchemaReconciler_IndexCheckFailureStillAttempts(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSchemaRepo)

	repo.On("ColumnExists", ctx, entities.TablePatients, "patient_uid").Return(true, nil)
	repo.On("IndexExists", ctx, entities.TablePatients, PatientUIDIndex).
		Return(false, apperrors.NewSchemaError("failed to check index", errors.New("SELECT command denied")))
	repo.On("AddUniqueIndex", ctx, entities.TablePatients, PatientUIDIndex, "patient_uid").
		Return(errors.New("Error 1061: Duplicate key name 'uq_patients_patient_uid'"))

	report := NewSchemaReconciler(repo, nil).Reconcile(ctx, []ColumnSpec{
		{entities.TablePatients, "patient_uid", "VARCHAR(20) NULL"},
	}, TenantIndexes())

	require.Len(t, report.Skipped, 1)
	assert.Contains(t, report.Skipped[0], PatientUIDIndex)
	repo.AssertExpectations(t)
}

func TestUpsertEngine_MissingKeyColumnIsSchemaError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSchemaRepo)
	repo.On("Columns", ctx, entities.TableMedicines).Return(entities.NewColumnSet("id", "form"), nil)

	engine := NewUpsertEngine(repo, newFakeDB())
	rows := []entities.Row{entities.MedicineCatalogEntry{Name: "Paracetamol 500mg"}.Row()}

	tally, err := engine.Seed(ctx, CategoryMedicines, rows, SeedOptions{})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeSchema))
	assert.Equal(t, Tally{}, tally)
}

func TestUpsertEngine_DuplicateKeysWithinDataAreSeenByLaterLookups(t *testing.T) {
	db := newFakeDB().createTable(entities.TableLabTests, "name", "category")
	engine := NewUpsertEngine(db, db)

	rows := []entities.Row{
		entities.LabTestCatalogEntry{Name: "HbA1c", Category: "Biochemistry"}.Row(),
		entities.LabTestCatalogEntry{Name: "HbA1c", Category: "Endocrinology"}.Row(),
	}

	var resolved []int64
	tally, err := engine.Seed(context.Background(), CategoryLabTests, rows, SeedOptions{
		OnResolved: func(_ context.Context, id int64, _ bool) error {
			resolved = append(resolved, id)
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, Tally{Inserted: 1, Skipped: 1}, tally)
	assert.Equal(t, []int64{1, 1}, resolved)
}

func TestUpsertEngine_EmptyInputDoesNothing(t *testing.T) {
	repo := new(MockSchemaRepo)
	tally, err := NewUpsertEngine(repo, newFakeDB()).Seed(context.Background(), CategoryDoctors, nil, SeedOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, tally.Total())
	repo.AssertNotCalled(t, "Columns", mock.Anything, mock.Anything)
}

func TestFormatPatientUID(t *testing.T) {
	assert.Equal(t, "PT-2026-000001", FormatPatientUID(2026, 1))
	assert.Equal(t, "PT-2025-004217", FormatPatientUID(2025, 4217))
	assert.Equal(t, "PT-2026-999999", FormatPatientUID(2026, 999999))
}

func TestDoctorPool(t *testing.T) {
	empty := NewDoctorPool(7)
	assert.Nil(t, empty.Pick())

	pool := NewDoctorPool(7)
	for _, id := range []int64{11, 12, 13} {
		pool.Add(id)
	}
	assert.Equal(t, []int64{11, 12, 13}, pool.IDs())

	seen := make(map[int64]bool)
	for i := 0; i < 200; i++ {
		id := pool.Pick()
		require.NotNil(t, id)
		assert.Contains(t, []int64{11, 12, 13}, *id)
		seen[*id] = true
	}
	assert.Len(t, seen, 3)

	first, second := NewDoctorPool(7), NewDoctorPool(7)
	first.Add(1)
	first.Add(2)
	second.Add(1)
	second.Add(2)
	for i := 0; i < 10; i++ {
		assert.Equal(t, *first.Pick(), *second.Pick(), "same seed, same sequence")
	}
}
