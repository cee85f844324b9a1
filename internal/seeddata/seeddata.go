// Package seeddata holds the reference and demonstration records the seeders
// write into a tenant schema. The built-in sets are the default; a YAML file
// can replace any of them.
package seeddata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/medora/tenant-seeder/internal/domain/entities"
	apperrors "github.com/medora/tenant-seeder/pkg/errors"
)

// Bundle is one complete set of seed records
type Bundle struct {
	Medicines  []entities.MedicineCatalogEntry  `yaml:"medicines"`
	Procedures []entities.ProcedureCatalogEntry `yaml:"procedures"`
	LabTests   []entities.LabTestCatalogEntry   `yaml:"lab_tests"`
	Doctors    []entities.Doctor                `yaml:"doctors"`
	Patients   []entities.Patient               `yaml:"patients"`
}

// Medicines returns a copy of the built-in medicine catalog
func Medicines() []entities.MedicineCatalogEntry {
	return append([]entities.MedicineCatalogEntry(nil), medicines...)
}

// Procedures returns a copy of the built-in procedure catalog
func Procedures() []entities.ProcedureCatalogEntry {
	return append([]entities.ProcedureCatalogEntry(nil), procedures...)
}

// LabTests returns a copy of the built-in lab test catalog
func LabTests() []entities.LabTestCatalogEntry {
	return append([]entities.LabTestCatalogEntry(nil), labTests...)
}

// Doctors returns a copy of the built-in demo doctors
func Doctors() []entities.Doctor {
	return append([]entities.Doctor(nil), doctors...)
}

// Patients returns a copy of the built-in demo patients
func Patients() []entities.Patient {
	return append([]entities.Patient(nil), patients...)
}

// Default returns the built-in bundle
func Default() *Bundle {
	return &Bundle{
		Medicines:  Medicines(),
		Procedures: Procedures(),
		LabTests:   LabTests(),
		Doctors:    Doctors(),
		Patients:   Patients(),
	}
}

// Load returns the built-in bundle when path is empty, otherwise LoadFile(path)
func Load(path string) (*Bundle, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a YAML bundle. Sections present and non-empty in the file
// replace the built-in set; the others fall back to it.
func LoadFile(path string) (*Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewDataError(fmt.Sprintf("failed to read seed data file %s", path), err)
	}
	return Parse(raw)
}

// Parse decodes a YAML bundle and fills empty sections from the built-in data
func Parse(raw []byte) (*Bundle, error) {
	var override Bundle
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&override); err != nil && !errors.Is(err, io.EOF) {
		return nil, apperrors.NewDataError("failed to parse seed data", err)
	}

	b := Default()
	if len(override.Medicines) > 0 {
		b.Medicines = override.Medicines
	}
	if len(override.Procedures) > 0 {
		b.Procedures = override.Procedures
	}
	if len(override.LabTests) > 0 {
		b.LabTests = override.LabTests
	}
	if len(override.Doctors) > 0 {
		b.Doctors = override.Doctors
	}
	if len(override.Patients) > 0 {
		b.Patients = override.Patients
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks that every record carries its natural key
func (b *Bundle) Validate() error {
	var problems []string
	check := func(section string, i int, key string) {
		if strings.TrimSpace(key) == "" {
			problems = append(problems, fmt.Sprintf("%s[%d]: missing natural key", section, i))
		}
	}

	for i, m := range b.Medicines {
		check("medicines", i, m.Name)
	}
	for i, p := range b.Procedures {
		check("procedures", i, p.Name)
	}
	for i, l := range b.LabTests {
		check("lab_tests", i, l.Name)
	}
	for i, d := range b.Doctors {
		check("doctors", i, d.Email)
	}
	for i, p := range b.Patients {
		check("patients", i, p.Email)
	}

	if len(problems) > 0 {
		return apperrors.NewDataError("invalid seed data: "+strings.Join(problems, "; "), nil)
	}
	return nil
}
