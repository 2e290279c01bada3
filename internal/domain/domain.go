package domain

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleDoctor     Role = "DOCTOR"
	RolePatient    Role = "PATIENT"
	RolePharmacist Role = "PHARMACIST"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient, RolePharmacist:
		return true
	}
	return false
}

// User is the base identity shared by every role record. Identifiers are
// opaque strings; uniqueness is enforced by the store, not by storage.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
}

// HospitalStats is a process-wide singleton, read-only after seeding.
type HospitalStats struct {
	OccupiedBeds int            `json:"occupiedBeds"`
	TotalBeds    int            `json:"totalBeds"`
	BloodBank    map[string]int `json:"bloodBank"`
}

// Claims is the identity carried by an issued bearer token.
type Claims struct {
	UserID   string `json:"sub"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
