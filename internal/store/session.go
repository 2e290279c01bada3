package store

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/syncromed/syncromed-api/internal/domain"
	"github.com/syncromed/syncromed-api/internal/domain/doctor"
	"github.com/syncromed/syncromed-api/internal/domain/patient"
)

// The pharmacist has no backing collection; "pharma" resolves to this fixed
// identity and nothing is persisted for it.
const pharmacistUsername = "pharma"

var allDoctorSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

var fallbackSchedule = []string{"09:00", "12:00"}

// Login looks a user up by exact username within the given role's
// collection. There is no credential check; a valid username under the
// wrong role fails. Success sets the session and resets the active tab.
func (s *Store) Login(username string, role domain.Role) bool {
	s.mu.Lock()

	var found *domain.User
	switch role {
	case domain.RoleAdmin:
		for _, u := range s.admins {
			if u.Username == username && u.Role == domain.RoleAdmin {
				cp := *u
				found = &cp
				break
			}
		}
	case domain.RoleDoctor:
		for _, d := range s.doctors {
			if d.Username == username {
				cp := d.User
				found = &cp
				break
			}
		}
	case domain.RolePatient:
		for _, p := range s.patients {
			if p.Username == username {
				cp := p.User
				found = &cp
				break
			}
		}
	case domain.RolePharmacist:
		if username == pharmacistUsername {
			found = &domain.User{
				ID:       "pharm1",
				Name:     "Pharma Joe",
				Username: pharmacistUsername,
				Email:    "pharma@syncromed.ai",
				Role:     domain.RolePharmacist,
				Avatar:   "https://picsum.photos/100/100",
			}
		}
	}

	if found == nil {
		s.mu.Unlock()
		s.log.Debug("login miss",
			zap.String("username", username),
			zap.String("role", string(role)),
		)
		return false
	}

	s.currentUser = found
	s.activeTab = TabDashboard
	s.mu.Unlock()

	s.log.Info("user logged in",
		zap.String("user_id", found.ID),
		zap.String("role", string(found.Role)),
	)
	s.notify()
	return true
}

// Logout clears the session only; domain collections are untouched.
func (s *Store) Logout() {
	s.mu.Lock()
	s.currentUser = nil
	s.mu.Unlock()
	s.notify()
}

type RegisterCommand struct {
	Name     string
	Username string
	Email    string
	Phone    string
}

func (c *RegisterCommand) validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Username) == "" {
		errs = append(errs, "username is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// Register synthesizes a new user and logs it in. DOCTOR and PATIENT
// registrations join their collections; any other role gets a session but
// joins no collection, so it cannot be found by a later login. That
// boundary is deliberate.
func (s *Store) Register(cmd RegisterCommand, role domain.Role) (*domain.User, error) {
	if errs := cmd.validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if !role.IsValid() {
		return nil, &ValidationError{Fields: []string{"role is invalid"}}
	}

	s.mu.Lock()

	newUser := domain.User{
		ID:       s.uniqueIDLocked(),
		Name:     strings.TrimSpace(cmd.Name),
		Username: strings.TrimSpace(cmd.Username),
		Email:    strings.TrimSpace(cmd.Email),
		Phone:    strings.TrimSpace(cmd.Phone),
		Role:     role,
		Avatar:   fmt.Sprintf("https://picsum.photos/100/100?random=%d", s.rng.Intn(100)),
	}

	switch role {
	case domain.RoleDoctor:
		s.doctors = append(s.doctors, &doctor.Doctor{
			User:               newUser,
			Specialty:          "General",
			Schedule:           s.randomScheduleLocked(),
			AvailabilityStatus: doctor.StatusOffline,
			PatientsAssigned:   []string{},
		})
	case domain.RolePatient:
		s.patients = append(s.patients, &patient.Patient{
			User:    newUser,
			History: []patient.MedicalRecord{},
			Status:  patient.StatusOutpatient,
		})
	}

	cp := newUser
	s.currentUser = &cp
	s.activeTab = TabDashboard
	s.mu.Unlock()

	s.log.Info("user registered",
		zap.String("user_id", newUser.ID),
		zap.String("role", string(role)),
	)
	s.notify()
	return &newUser, nil
}

// randomScheduleLocked includes each hourly slot with probability 0.5 and
// never returns fewer than the two fallback slots.
func (s *Store) randomScheduleLocked() []string {
	schedule := make([]string, 0, len(allDoctorSlots))
	for _, slot := range allDoctorSlots {
		if s.rng.Float64() > 0.5 {
			schedule = append(schedule, slot)
		}
	}
	if len(schedule) == 0 {
		return append([]string(nil), fallbackSchedule...)
	}
	return schedule
}

// uniqueIDLocked synthesizes an id not used by any existing entity.
func (s *Store) uniqueIDLocked() string {
	for {
		id := s.newID()
		if !s.idTakenLocked(id) {
			return id
		}
	}
}

func (s *Store) idTakenLocked(id string) bool {
	for _, u := range s.admins {
		if u.ID == id {
			return true
		}
	}
	for _, d := range s.doctors {
		if d.ID == id {
			return true
		}
	}
	for _, p := range s.patients {
		if p.ID == id {
			return true
		}
	}
	return false
}
