package entities

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Doctor is a row of doctors, keyed by email
type Doctor struct {
	ID               int64   `json:"id" yaml:"-" db:"id"`
	Name             string  `json:"name" yaml:"name" db:"name"`
	Email            string  `json:"email" yaml:"email" db:"email"`
	Phone            string  `json:"phone" yaml:"phone" db:"phone"`
	Specialization   string  `json:"specialization" yaml:"specialization" db:"specialization"`
	ConsultationFee  float64 `json:"consultation_fee" yaml:"consultation_fee" db:"consultation_fee"` // INR
	IsActive         bool    `json:"is_active" yaml:"is_active" db:"is_active"`
	PlatformDoctorID string  `json:"platform_doctor_id,omitempty" yaml:"-" db:"platform_doctor_id"`
}

// Row implements the seeding row model. platform_doctor_id only reaches the
// INSERT on schemas migrated for the wider platform.
func (d Doctor) Row() Row {
	return Row{
		Table:     TableDoctors,
		KeyColumn: "email",
		Key:       d.Email,
		Fields: []Field{
			{"name", d.Name},
			{"email", d.Email},
			{"phone", nullable(d.Phone)},
			{"specialization", nullable(d.Specialization)},
			{"consultation_fee", d.ConsultationFee},
			{"is_active", d.IsActive},
			{"platform_doctor_id", nullable(d.PlatformDoctorID)},
		},
	}
}

// Patient is a row of patients, keyed by email
type Patient struct {
	ID         int64     `json:"id" yaml:"-" db:"id"`
	FullName   string    `json:"full_name" yaml:"full_name" db:"full_name"`
	Email      string    `json:"email" yaml:"email" db:"email"`
	Phone      string    `json:"phone" yaml:"phone" db:"phone"`
	Age        int       `json:"age" yaml:"age" db:"age"`
	Gender     string    `json:"gender" yaml:"gender" db:"gender"`
	State      string    `json:"state" yaml:"state" db:"state"`
	Address    string    `json:"address" yaml:"address" db:"address"`
	Notes      string    `json:"notes" yaml:"concern" db:"notes"` // free-text concern
	DoctorID   *int64    `json:"doctor_id,omitempty" yaml:"-" db:"doctor_id"`
	PatientUID string    `json:"patient_uid,omitempty" yaml:"-" db:"patient_uid"`
	IsActive   bool      `json:"is_active" yaml:"-" db:"is_active"`
	CreatedAt  time.Time `json:"created_at" yaml:"-" db:"created_at"`
}

// Row implements the seeding row model. patient_uid is not part of the
// INSERT: it derives from the generated id and is written afterwards.
func (p Patient) Row() Row {
	var doctorID interface{}
	if p.DoctorID != nil {
		doctorID = *p.DoctorID
	}
	var age interface{}
	if p.Age > 0 {
		age = p.Age
	}

	return Row{
		Table:     TablePatients,
		KeyColumn: "email",
		Key:       p.Email,
		Fields: []Field{
			{"full_name", p.FullName},
			{"email", p.Email},
			{"phone", nullable(p.Phone)},
			{"age", age},
			{"gender", nullable(p.Gender)},
			{"state", nullable(p.State)},
			{"address", nullable(p.Address)},
			{"notes", nullable(p.Notes)},
			{"doctor_id", doctorID},
			{"is_active", p.IsActive},
			{"created_at", p.CreatedAt},
		},
	}
}

// UnmarshalYAML defaults is_active to true for doctors read from a data file
func (d *Doctor) UnmarshalYAML(value *yaml.Node) error {
	type plain Doctor
	p := plain{IsActive: true}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*d = Doctor(p)
	return nil
}
