package store

import (
	"go.uber.org/zap"

	"github.com/syncromed/syncromed-api/internal/domain"
	"github.com/syncromed/syncromed-api/internal/domain/appointment"
	"github.com/syncromed/syncromed-api/internal/domain/message"
	"github.com/syncromed/syncromed-api/internal/domain/patient"
	"github.com/syncromed/syncromed-api/internal/domain/pharmacy"
)

// Domain mutations are best-effort: an unresolved id is silently absorbed
// and the store is left unchanged. Each mutation leaves every collection
// self-consistent before returning; no partial multi-collection update is
// observable.

// AllocatePatient assigns a patient to a doctor. The patient is removed
// from every doctor's set and inserted into the target's, keeping patient
// membership exclusive — current write wins.
func (s *Store) AllocatePatient(patientID, doctorID string) {
	s.mu.Lock()
	p := s.findPatient(patientID)
	if p == nil {
		s.mu.Unlock()
		return
	}
	p.AssignedDoctorID = doctorID

	for _, d := range s.doctors {
		filtered := d.PatientsAssigned[:0]
		for _, pid := range d.PatientsAssigned {
			if pid != patientID {
				filtered = append(filtered, pid)
			}
		}
		d.PatientsAssigned = filtered
		if d.ID == doctorID {
			d.PatientsAssigned = append(d.PatientsAssigned, patientID)
		}
	}
	s.mu.Unlock()

	s.log.Info("patient allocated",
		zap.String("patient_id", patientID),
		zap.String("doctor_id", doctorID),
	)
	s.notify()
}

// AddMedicalRecord prepends a record to the patient's history. History is
// newest-first and append-only.
func (s *Store) AddMedicalRecord(patientID string, cmd patient.CreateRecordCommand) {
	s.mu.Lock()
	p := s.findPatient(patientID)
	if p == nil {
		s.mu.Unlock()
		return
	}
	record := patient.MedicalRecord{
		ID:           s.newID(),
		Date:         cmd.Date,
		Symptoms:     cmd.Symptoms,
		Diagnosis:    cmd.Diagnosis,
		Prescription: cmd.Prescription,
		Notes:        cmd.Notes,
		DoctorID:     cmd.DoctorID,
	}
	p.History = append([]patient.MedicalRecord{record}, p.History...)
	s.mu.Unlock()
	s.notify()
}

// UpdateInventory sets a medicine's stock unconditionally; the caller's
// value is taken as is, with no clamping.
func (s *Store) UpdateInventory(id string, newStock int) {
	s.mu.Lock()
	for _, m := range s.medicines {
		if m.ID == id {
			m.Stock = newStock
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// ScheduleAppointment appends the appointment as given. No overlap or
// double-booking check is performed.
func (s *Store) ScheduleAppointment(cmd appointment.CreateAppointmentCommand) *appointment.Appointment {
	status := cmd.Status
	if status == "" {
		status = appointment.StatusPending
	}
	apt := &appointment.Appointment{
		ID:        s.newID(),
		PatientID: cmd.PatientID,
		DoctorID:  cmd.DoctorID,
		Date:      cmd.Date,
		Time:      cmd.Time,
		Status:    status,
	}

	s.mu.Lock()
	s.appointments = append(s.appointments, apt)
	s.mu.Unlock()
	s.notify()

	cp := *apt
	return &cp
}

func (s *Store) UpdateAppointmentStatus(id string, status appointment.Status) {
	s.mu.Lock()
	for _, a := range s.appointments {
		if a.ID == id {
			a.Status = status
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// GenerateBill adds amount to the patient's pending-bills accumulator.
// Nothing in this version ever decreases it; paying only emits a receipt.
func (s *Store) GenerateBill(patientID string, amount int) {
	s.mu.Lock()
	p := s.findPatient(patientID)
	if p == nil {
		s.mu.Unlock()
		return
	}
	p.PendingBills += amount
	s.mu.Unlock()

	s.log.Info("bill generated",
		zap.String("patient_id", patientID),
		zap.Int("amount", amount),
	)
	s.notify()
}

// SendMessage appends a message stamped with the session's identity and a
// wall-clock "HH:MM" timestamp.
func (s *Store) SendMessage(receiverID, content string) error {
	s.mu.Lock()
	if s.currentUser == nil {
		s.mu.Unlock()
		return ErrNoSession
	}
	msg := &message.Message{
		ID:         s.newID(),
		SenderID:   s.currentUser.ID,
		SenderName: s.currentUser.Name,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  s.now().Format("15:04"),
	}
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	s.notify()
	return nil
}

// SendPharmacyRequest raises a PENDING request in the session doctor's
// name. Only a doctor session may raise one.
func (s *Store) SendPharmacyRequest(medicineName string) error {
	s.mu.Lock()
	if s.currentUser == nil {
		s.mu.Unlock()
		return ErrNoSession
	}
	if s.currentUser.Role != domain.RoleDoctor {
		s.mu.Unlock()
		return ErrForbidden
	}
	req := &pharmacy.Request{
		ID:           s.newID(),
		DoctorID:     s.currentUser.ID,
		DoctorName:   s.currentUser.Name,
		MedicineName: medicineName,
		Status:       pharmacy.StatusPending,
		Timestamp:    s.now().Format("15:04"),
	}
	s.pharmacyRequests = append([]*pharmacy.Request{req}, s.pharmacyRequests...)
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *Store) UpdatePharmacyRequestStatus(id string, status pharmacy.RequestStatus) {
	s.mu.Lock()
	for _, r := range s.pharmacyRequests {
		if r.ID == id {
			r.Status = status
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}
