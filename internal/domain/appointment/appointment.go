package appointment

import "strings"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment links a patient and a doctor at a date/time slot. No overlap
// or double-booking check is performed on creation.
type Appointment struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    Status `json:"status"`
}

type CreateAppointmentCommand struct {
	PatientID string
	DoctorID  string
	Date      string
	Time      string
	Status    Status
}

func (c *CreateAppointmentCommand) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.PatientID) == "" {
		errs = append(errs, "patient_id is required")
	}
	if strings.TrimSpace(c.DoctorID) == "" {
		errs = append(errs, "doctor_id is required")
	}
	if strings.TrimSpace(c.Date) == "" {
		errs = append(errs, "date is required")
	}
	if strings.TrimSpace(c.Time) == "" {
		errs = append(errs, "time is required")
	}
	if c.Status != "" && !c.Status.IsValid() {
		errs = append(errs, "status is invalid")
	}
	return errs
}
