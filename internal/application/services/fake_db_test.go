package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/medora/tenant-seeder/internal/domain/entities"
)

// fakeDB is an in-memory tenant schema implementing both repositories. It
// rejects statements that name unknown columns, the way MySQL does.
type fakeDB struct {
	tables    map[string]*fakeTable
	indexes   map[string]bool
	ddlErr    error
	insertErr map[string]error
	ddlCalls  int
}

type fakeTable struct {
	columns entities.ColumnSet
	rows    []map[string]interface{}
	nextID  int64
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		tables:    make(map[string]*fakeTable),
		indexes:   make(map[string]bool),
		insertErr: make(map[string]error),
	}
}

func (f *fakeDB) createTable(name string, columns ...string) *fakeDB {
	f.tables[name] = &fakeTable{columns: entities.NewColumnSet(append([]string{"id"}, columns...)...)}
	return f
}

// legacySchema has only the columns every tenant schema has always had
func legacySchema() *fakeDB {
	return newFakeDB().
		createTable(entities.TableMedicines, "name").
		createTable(entities.TableProcedures, "name", "category", "description", "preparation_instructions").
		createTable(entities.TableLabTests, "name", "category", "sample_type", "turnaround_time", "preparation_instructions").
		createTable(entities.TableDoctors, "name", "email", "phone", "specialization", "consultation_fee", "is_active").
		createTable(entities.TablePatients, "full_name", "email", "phone", "created_at")
}

func (f *fakeDB) seedRow(table string, values map[string]interface{}) int64 {
	t := f.tables[table]
	t.nextID++
	row := map[string]interface{}{"id": t.nextID}
	for k, v := range values {
		row[k] = v
	}
	t.rows = append(t.rows, row)
	return t.nextID
}

func (f *fakeDB) table(name string) (*fakeTable, error) {
	t, ok := f.tables[name]
	if !ok {
		return nil, fmt.Errorf("Error 1146: Table '%s' doesn't exist", name)
	}
	return t, nil
}

func (f *fakeDB) ColumnExists(_ context.Context, table, column string) (bool, error) {
	t, ok := f.tables[table]
	if !ok {
		return false, nil
	}
	return t.columns.Has(column), nil
}

func (f *fakeDB) Columns(_ context.Context, table string) (entities.ColumnSet, error) {
	t, err := f.table(table)
	if err != nil {
		return nil, err
	}
	out := make(entities.ColumnSet, len(t.columns))
	for c := range t.columns {
		out[c] = struct{}{}
	}
	return out, nil
}

func (f *fakeDB) IndexExists(_ context.Context, _, index string) (bool, error) {
	return f.indexes[index], nil
}

func (f *fakeDB) AddColumn(_ context.Context, table, column, _ string) error {
	f.ddlCalls++
	if f.ddlErr != nil {
		return f.ddlErr
	}
	t, err := f.table(table)
	if err != nil {
		return err
	}
	if t.columns.Has(column) {
		return fmt.Errorf("Error 1060: Duplicate column name '%s'", column)
	}
	t.columns[column] = struct{}{}
	return nil
}

func (f *fakeDB) AddUniqueIndex(_ context.Context, _, index, _ string) error {
	f.ddlCalls++
	if f.ddlErr != nil {
		return f.ddlErr
	}
	if f.indexes[index] {
		return fmt.Errorf("Error 1061: Duplicate key name '%s'", index)
	}
	f.indexes[index] = true
	return nil
}

func (f *fakeDB) FindIDByKey(_ context.Context, table, keyColumn, key string) (int64, bool, error) {
	t, err := f.table(table)
	if err != nil {
		return 0, false, err
	}
	for _, row := range t.rows {
		if row[keyColumn] == key {
			return row["id"].(int64), true, nil
		}
	}
	return 0, false, nil
}

func (f *fakeDB) Insert(_ context.Context, table string, fields []entities.Field) (int64, error) {
	if err := f.insertErr[table]; err != nil {
		return 0, err
	}
	t, err := f.table(table)
	if err != nil {
		return 0, err
	}
	values := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		if !t.columns.Has(field.Column) {
			return 0, fmt.Errorf("Error 1054: Unknown column '%s' in 'field list'", field.Column)
		}
		values[field.Column] = field.Value
	}
	return f.seedRow(table, values), nil
}

func (f *fakeDB) SetPatientUID(_ context.Context, id int64, uid string) (bool, error) {
	t, err := f.table(entities.TablePatients)
	if err != nil {
		return false, err
	}
	if !t.columns.Has("patient_uid") {
		return false, fmt.Errorf("Error 1054: Unknown column 'patient_uid'")
	}
	for _, row := range t.rows {
		if row["id"] != id {
			continue
		}
		if current, _ := row["patient_uid"].(string); current != "" {
			return false, nil
		}
		row["patient_uid"] = uid
		return true, nil
	}
	return false, nil
}

func (f *fakeDB) PatientIDsMissingUID(_ context.Context) ([]int64, error) {
	t, err := f.table(entities.TablePatients)
	if err != nil {
		return nil, err
	}
	var ids []int64
	for _, row := range t.rows {
		if uid, _ := row["patient_uid"].(string); uid == "" {
			ids = append(ids, row["id"].(int64))
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
