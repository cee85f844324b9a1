package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func columnsOf(fields []Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Column)
	}
	return out
}

func TestRow_PresentKeepsDeclarationOrder(t *testing.T) {
	m := MedicineCatalogEntry{Name: "Paracetamol 500mg", MedicineCode: "MED-001", Form: "Tablet", Strength: "500mg", Route: "Oral"}
	cols := NewColumnSet("route", "name", "form", "strength")

	present := m.Row().Present(cols)

	assert.Equal(t, []string{"name", "form", "strength", "route"}, columnsOf(present))
	assert.Equal(t, []string{"medicine_code", "default_frequency", "duration"}, m.Row().Missing(cols))
}

func TestRow_EmptyOptionalValuesBecomeNull(t *testing.T) {
	l := LabTestCatalogEntry{Name: "HbA1c"}
	row := l.Row()

	assert.Equal(t, "name", row.KeyColumn)
	assert.Equal(t, "HbA1c", row.Key)
	for _, f := range row.Fields[1:] {
		assert.Nil(t, f.Value, f.Column)
	}
}

func TestPatientRow_ExcludesUIDAndCarriesDoctor(t *testing.T) {
	doctorID := int64(7)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := Patient{FullName: "Priya Nair", Email: "priya.nair@patienttest.com", Age: 34, DoctorID: &doctorID, IsActive: true, CreatedAt: created}

	row := p.Row()

	assert.Equal(t, TablePatients, row.Table)
	assert.Equal(t, "email", row.KeyColumn)
	assert.NotContains(t, columnsOf(row.Fields), "patient_uid")

	values := map[string]interface{}{}
	for _, f := range row.Fields {
		values[f.Column] = f.Value
	}
	assert.Equal(t, int64(7), values["doctor_id"])
	assert.Equal(t, 34, values["age"])
	assert.Equal(t, created, values["created_at"])
}

func TestPatientRow_NoDoctorIsNull(t *testing.T) {
	row := Patient{FullName: "Ravi Kumar", Email: "ravi.kumar@patienttest.com"}.Row()
	for _, f := range row.Fields {
		if f.Column == "doctor_id" {
			assert.Nil(t, f.Value)
		}
	}
}

func TestRow_WithReplacesOrAppends(t *testing.T) {
	base := Doctor{Name: "Dr. Amit Sharma", Email: "amit.sharma@hospitaltest.com"}.Row()

	replaced := base.With("platform_doctor_id", "abc")
	appended := base.With("department", "Cardiology")

	assert.Len(t, replaced.Fields, len(base.Fields))
	assert.Equal(t, "abc", replaced.Fields[len(replaced.Fields)-1].Value)
	assert.Nil(t, base.Fields[len(base.Fields)-1].Value, "original row is not mutated")
	assert.Equal(t, "department", appended.Fields[len(appended.Fields)-1].Column)
	assert.Len(t, base.Fields, 7)
}
