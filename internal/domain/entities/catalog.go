package entities

// MedicineCatalogEntry is a row of medicines_catalog, keyed by name
type MedicineCatalogEntry struct {
	Name             string `json:"name" yaml:"name" db:"name"`
	MedicineCode     string `json:"medicine_code" yaml:"medicine_code" db:"medicine_code"`
	Form             string `json:"form" yaml:"form" db:"form"` // tablet, capsule, injection, ...
	Strength         string `json:"strength" yaml:"strength" db:"strength"`
	DefaultFrequency string `json:"default_frequency" yaml:"default_frequency" db:"default_frequency"`
	Duration         string `json:"duration" yaml:"duration" db:"duration"`
	Route            string `json:"route" yaml:"route" db:"route"`
}

// Row implements the seeding row model
func (m MedicineCatalogEntry) Row() Row {
	return Row{
		Table:     TableMedicines,
		KeyColumn: "name",
		Key:       m.Name,
		Fields: []Field{
			{"name", m.Name},
			{"medicine_code", nullable(m.MedicineCode)},
			{"form", nullable(m.Form)},
			{"strength", nullable(m.Strength)},
			{"default_frequency", nullable(m.DefaultFrequency)},
			{"duration", nullable(m.Duration)},
			{"route", nullable(m.Route)},
		},
	}
}

// ProcedureCatalogEntry is a row of procedure_catalogue, keyed by name
type ProcedureCatalogEntry struct {
	Name                    string `json:"name" yaml:"name" db:"name"`
	ProcedureCode           string `json:"procedure_code" yaml:"procedure_code" db:"procedure_code"`
	Department              string `json:"department" yaml:"department" db:"department"`
	Category                string `json:"category" yaml:"category" db:"category"`
	Duration                string `json:"duration" yaml:"duration" db:"duration"`
	Description             string `json:"description" yaml:"description" db:"description"`
	PreparationInstructions string `json:"preparation_instructions" yaml:"preparation_instructions" db:"preparation_instructions"`
}

// Row implements the seeding row model
func (p ProcedureCatalogEntry) Row() Row {
	return Row{
		Table:     TableProcedures,
		KeyColumn: "name",
		Key:       p.Name,
		Fields: []Field{
			{"name", p.Name},
			{"procedure_code", nullable(p.ProcedureCode)},
			{"department", nullable(p.Department)},
			{"category", nullable(p.Category)},
			{"duration", nullable(p.Duration)},
			{"description", nullable(p.Description)},
			{"preparation_instructions", nullable(p.PreparationInstructions)},
		},
	}
}

// LabTestCatalogEntry is a row of lab_catalogue, keyed by name
type LabTestCatalogEntry struct {
	Name                    string `json:"name" yaml:"name" db:"name"`
	TestCode                string `json:"test_code" yaml:"test_code" db:"test_code"`
	Category                string `json:"category" yaml:"category" db:"category"`
	SampleType              string `json:"sample_type" yaml:"sample_type" db:"sample_type"`
	TurnaroundTime          string `json:"turnaround_time" yaml:"turnaround_time" db:"turnaround_time"`
	PreparationInstructions string `json:"preparation_instructions" yaml:"preparation_instructions" db:"preparation_instructions"`
}

// Row implements the seeding row model
func (l LabTestCatalogEntry) Row() Row {
	return Row{
		Table:     TableLabTests,
		KeyColumn: "name",
		Key:       l.Name,
		Fields: []Field{
			{"name", l.Name},
			{"test_code", nullable(l.TestCode)},
			{"category", nullable(l.Category)},
			{"sample_type", nullable(l.SampleType)},
			{"turnaround_time", nullable(l.TurnaroundTime)},
			{"preparation_instructions", nullable(l.PreparationInstructions)},
		},
	}
}
