package patient

import (
	"strings"

	"github.com/syncromed/syncromed-api/internal/domain"
)

type Status string

const (
	StatusAdmitted   Status = "Admitted"
	StatusOutpatient Status = "Outpatient"
	StatusDischarged Status = "Discharged"
	StatusCritical   Status = "Critical"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAdmitted, StatusOutpatient, StatusDischarged, StatusCritical:
		return true
	}
	return false
}

type Vitals struct {
	HeartRate int     `json:"heartRate"`
	BP        string  `json:"bp"`
	Temp      float64 `json:"temp"`
}

// MedicalRecord is immutable once created: it is prepended to a patient's
// history and never edited or deleted. DoctorID is a back-reference, not
// ownership.
type MedicalRecord struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Symptoms     string `json:"symptoms"`
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes"`
	DoctorID     string `json:"doctorId"`
}

// Patient extends the base user with clinical state. PendingBills is a
// non-negative accumulator in minor currency units; no operation reduces it.
type Patient struct {
	domain.User

	Age              int             `json:"age"`
	Gender           string          `json:"gender"`
	BloodType        string          `json:"bloodType"`
	History          []MedicalRecord `json:"history"` // newest first
	AssignedDoctorID string          `json:"assignedDoctorId,omitempty"`
	Status           Status          `json:"status"`
	Vitals           *Vitals         `json:"vitals,omitempty"`
	PendingBills     int             `json:"pendingBills"`
}

// Clone returns a deep copy safe to hand out across the store boundary.
func (p *Patient) Clone() *Patient {
	cp := *p
	cp.History = append([]MedicalRecord(nil), p.History...)
	if p.Vitals != nil {
		v := *p.Vitals
		cp.Vitals = &v
	}
	return &cp
}

// CreateRecordCommand is the validated boundary shape for a new history
// entry.
type CreateRecordCommand struct {
	Date         string
	Symptoms     string
	Diagnosis    string
	Prescription string
	Notes        string
	DoctorID     string
}

func (c *CreateRecordCommand) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Date) == "" {
		errs = append(errs, "date is required")
	}
	if strings.TrimSpace(c.Symptoms) == "" {
		errs = append(errs, "symptoms is required")
	}
	if strings.TrimSpace(c.Diagnosis) == "" {
		errs = append(errs, "diagnosis is required")
	}
	if strings.TrimSpace(c.DoctorID) == "" {
		errs = append(errs, "doctor_id is required")
	}
	return errs
}
