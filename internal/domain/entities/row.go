package entities

// Tables in a tenant schema that the seeder reconciles and populates
const (
	TableMedicines  = "medicines_catalog"
	TableProcedures = "procedure_catalogue"
	TableLabTests   = "lab_catalogue"
	TablePatients   = "patients"
	TableDoctors    = "doctors"
)

// Field is one column/value pair a record can populate
type Field struct {
	Column string
	Value  interface{}
}

// Row describes a record to be inserted into Table unless a row with the same
// natural key already exists. Fields lists every column the record can
// populate; which of them reach the INSERT depends on the tenant schema.
type Row struct {
	Table     string
	KeyColumn string
	Key       string
	Fields    []Field
}

// Present returns the fields whose column exists in columns, in declaration order
func (r Row) Present(columns ColumnSet) []Field {
	out := make([]Field, 0, len(r.Fields))
	for _, f := range r.Fields {
		if columns.Has(f.Column) {
			out = append(out, f)
		}
	}
	return out
}

// Missing returns the columns Row could populate but the schema lacks
func (r Row) Missing(columns ColumnSet) []string {
	var out []string
	for _, f := range r.Fields {
		if !columns.Has(f.Column) {
			out = append(out, f.Column)
		}
	}
	return out
}

// ColumnSet is the set of column names present on one table
type ColumnSet map[string]struct{}

// NewColumnSet builds a set from column names
func NewColumnSet(columns ...string) ColumnSet {
	set := make(ColumnSet, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}
	return set
}

// Has reports whether column is present
func (s ColumnSet) Has(column string) bool {
	_, ok := s[column]
	return ok
}

// nullable maps an empty string to SQL NULL
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// With returns a copy of r with column set to value, appending the field if r
// does not list it yet
func (r Row) With(column string, value interface{}) Row {
	fields := make([]Field, len(r.Fields), len(r.Fields)+1)
	copy(fields, r.Fields)
	for i := range fields {
		if fields[i].Column == column {
			fields[i].Value = value
			r.Fields = fields
			return r
		}
	}
	r.Fields = append(fields, Field{Column: column, Value: value})
	return r
}
