// Package store owns every mutable collection in the system: the seeded
// domain data, the authenticated session, and the active-view selector.
// All cross-view communication goes through it; nothing else holds state.
//
// The store is constructed explicitly and injected — there is no package
// global. State is volatile: a process restart reseeds from scratch.
package store

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syncromed/syncromed-api/internal/domain"
	"github.com/syncromed/syncromed-api/internal/domain/appointment"
	"github.com/syncromed/syncromed-api/internal/domain/doctor"
	"github.com/syncromed/syncromed-api/internal/domain/medicine"
	"github.com/syncromed/syncromed-api/internal/domain/message"
	"github.com/syncromed/syncromed-api/internal/domain/patient"
	"github.com/syncromed/syncromed-api/internal/domain/pharmacy"
)

// TabDashboard is the view selector every successful login resets to.
const TabDashboard = "DASHBOARD"

type Store struct {
	log   *zap.Logger
	rng   *rand.Rand
	now   func() time.Time
	newID func() string

	mu          sync.RWMutex
	currentUser *domain.User
	activeTab   string

	admins           []*domain.User
	doctors          []*doctor.Doctor
	patients         []*patient.Patient
	medicines        []*medicine.Medicine
	appointments     []*appointment.Appointment
	messages         []*message.Message
	pharmacyRequests []*pharmacy.Request
	stats            domain.HospitalStats

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

type Option func(*Store)

// WithRand pins the randomness used for registration schedules. Tests use
// this; production seeds from the wall clock.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

// WithClock pins the wall clock used for message and request timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides id synthesis for new entities.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func New(seed Seed, log *zap.Logger, opts ...Option) *Store {
	s := &Store{
		log:          log,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		now:          time.Now,
		newID:        uuid.NewString,
		activeTab:    TabDashboard,
		admins:       seed.Admins,
		doctors:      seed.Doctors,
		patients:     seed.Patients,
		medicines:    seed.Medicines,
		appointments: seed.Appointments,
		stats:        seed.Stats,
		subs:         make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to run after every completed mutation. The
// returned function removes the subscription. Callbacks run outside the
// store lock, synchronously, in the mutating goroutine.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// CurrentUser returns a copy of the session user, or false when logged out.
func (s *Store) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return domain.User{}, false
	}
	return *s.currentUser, true
}

func (s *Store) ActiveTab() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTab
}

func (s *Store) Doctors() []*doctor.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*doctor.Doctor, len(s.doctors))
	for i, d := range s.doctors {
		out[i] = d.Clone()
	}
	return out
}

func (s *Store) DoctorByID(id string) (*doctor.Doctor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d := s.findDoctor(id); d != nil {
		return d.Clone(), true
	}
	return nil, false
}

func (s *Store) Patients() []*patient.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*patient.Patient, len(s.patients))
	for i, p := range s.patients {
		out[i] = p.Clone()
	}
	return out
}

func (s *Store) PatientByID(id string) (*patient.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p := s.findPatient(id); p != nil {
		return p.Clone(), true
	}
	return nil, false
}

// PatientByEmail resolves a patient record by email. The patient dashboard
// joins on email rather than the session id; keep both paths available.
func (s *Store) PatientByEmail(email string) (*patient.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.Email == email {
			return p.Clone(), true
		}
	}
	return nil, false
}

func (s *Store) Medicines() []*medicine.Medicine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*medicine.Medicine, len(s.medicines))
	for i, m := range s.medicines {
		cp := *m
		out[i] = &cp
	}
	return out
}

func (s *Store) MedicineByID(id string) (*medicine.Medicine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.medicines {
		if m.ID == id {
			cp := *m
			return &cp, true
		}
	}
	return nil, false
}

// LowStockMedicines returns the medicines whose derived low-stock predicate
// holds.
func (s *Store) LowStockMedicines() []*medicine.Medicine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*medicine.Medicine
	for _, m := range s.medicines {
		if m.IsLowStock() {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out
}

func (s *Store) Appointments() []*appointment.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*appointment.Appointment, len(s.appointments))
	for i, a := range s.appointments {
		cp := *a
		out[i] = &cp
	}
	return out
}

func (s *Store) Messages() []*message.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*message.Message, len(s.messages))
	for i, m := range s.messages {
		cp := *m
		out[i] = &cp
	}
	return out
}

func (s *Store) PharmacyRequests() []*pharmacy.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*pharmacy.Request, len(s.pharmacyRequests))
	for i, r := range s.pharmacyRequests {
		cp := *r
		out[i] = &cp
	}
	return out
}

func (s *Store) Stats() domain.HospitalStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := s.stats
	cp.BloodBank = make(map[string]int, len(s.stats.BloodBank))
	for k, v := range s.stats.BloodBank {
		cp.BloodBank[k] = v
	}
	return cp
}

// SetActiveTab selects which view-specific subset of the dashboard is
// rendered. Pure UI-routing state, not domain data.
func (s *Store) SetActiveTab(tab string) {
	s.mu.Lock()
	s.activeTab = tab
	s.mu.Unlock()
	s.notify()
}

func (s *Store) findDoctor(id string) *doctor.Doctor {
	for _, d := range s.doctors {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func (s *Store) findPatient(id string) *patient.Patient {
	for _, p := range s.patients {
		if p.ID == id {
			return p
		}
	}
	return nil
}
