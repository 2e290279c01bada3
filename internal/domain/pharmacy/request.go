package pharmacy

type RequestStatus string

const (
	StatusPending     RequestStatus = "PENDING"
	StatusAvailable   RequestStatus = "AVAILABLE"
	StatusUnavailable RequestStatus = "UNAVAILABLE"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAvailable, StatusUnavailable:
		return true
	}
	return false
}

// Request is a doctor's ask for a medicine, answered by the pharmacist.
// Append-only except for status transitions.
type Request struct {
	ID           string        `json:"id"`
	DoctorID     string        `json:"doctorId"`
	DoctorName   string        `json:"doctorName"`
	MedicineName string        `json:"medicineName"`
	Status       RequestStatus `json:"status"`
	Timestamp    string        `json:"timestamp"` // wall-clock "HH:MM"
}
