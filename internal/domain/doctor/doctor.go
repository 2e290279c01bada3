package doctor

import (
	"github.com/syncromed/syncromed-api/internal/domain"
)

type AvailabilityStatus string

const (
	StatusOnline  AvailabilityStatus = "ONLINE"
	StatusBusy    AvailabilityStatus = "BUSY"
	StatusOffline AvailabilityStatus = "OFFLINE"
)

func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case StatusOnline, StatusBusy, StatusOffline:
		return true
	}
	return false
}

// Doctor extends the base user with clinical scheduling state.
// PatientsAssigned holds patient ids; a patient appears in at most one
// doctor's set at any time, an invariant the store's allocation operation
// maintains.
type Doctor struct {
	domain.User

	Specialty          string             `json:"specialty"`
	Schedule           []string           `json:"schedule"` // "HH:MM" slots, ordered
	AvailabilityStatus AvailabilityStatus `json:"availabilityStatus"`
	PatientsAssigned   []string           `json:"patientsAssigned"`
}

// HasPatient reports whether the given patient id is in this doctor's set.
func (d *Doctor) HasPatient(patientID string) bool {
	for _, id := range d.PatientsAssigned {
		if id == patientID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand out across the store boundary.
func (d *Doctor) Clone() *Doctor {
	cp := *d
	cp.Schedule = append([]string(nil), d.Schedule...)
	cp.PatientsAssigned = append([]string(nil), d.PatientsAssigned...)
	return &cp
}
