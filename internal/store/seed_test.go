package store

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syncromed/syncromed-api/internal/domain"
	"github.com/syncromed/syncromed-api/internal/domain/appointment"
	"github.com/syncromed/syncromed-api/internal/domain/doctor"
	"github.com/syncromed/syncromed-api/internal/domain/patient"
)

func TestNewSeedCounts(t *testing.T) {
	seed := NewSeed(rand.New(rand.NewSource(1)))

	assert.Len(t, seed.Medicines, 100)
	assert.Len(t, seed.Doctors, 2)
	assert.Len(t, seed.Patients, 2)
	assert.Len(t, seed.Admins, 1)
	assert.Len(t, seed.Appointments, 1)
}

func TestNewSeedIdentities(t *testing.T) {
	seed := NewSeed(rand.New(rand.NewSource(1)))

	admin := seed.Admins[0]
	assert.Equal(t, "admin1", admin.ID)
	assert.Equal(t, "Sarah Connor", admin.Name)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	doc1 := seed.Doctors[0]
	assert.Equal(t, "doc1", doc1.ID)
	assert.Equal(t, "house", doc1.Username)
	assert.Equal(t, doctor.StatusOnline, doc1.AvailabilityStatus)
	assert.Equal(t, []string{"pat1"}, doc1.PatientsAssigned)

	doc2 := seed.Doctors[1]
	assert.Equal(t, "doc2", doc2.ID)
	assert.Equal(t, doctor.StatusBusy, doc2.AvailabilityStatus)
	assert.Empty(t, doc2.PatientsAssigned)

	pat1 := seed.Patients[0]
	assert.Equal(t, "pat1", pat1.ID)
	assert.Equal(t, patient.StatusAdmitted, pat1.Status)
	assert.Equal(t, 4500, pat1.PendingBills)
	assert.Equal(t, "doc1", pat1.AssignedDoctorID)
	require.Len(t, pat1.History, 1)
	assert.Equal(t, "Migraine", pat1.History[0].Diagnosis)

	pat2 := seed.Patients[1]
	assert.Equal(t, "pat2", pat2.ID)
	assert.Equal(t, patient.StatusOutpatient, pat2.Status)
	assert.Empty(t, pat2.AssignedDoctorID)
	assert.Empty(t, pat2.History)

	apt := seed.Appointments[0]
	assert.Equal(t, "apt1", apt.ID)
	assert.Equal(t, appointment.StatusApproved, apt.Status)

	assert.Equal(t, 45, seed.Stats.OccupiedBeds)
	assert.Equal(t, 60, seed.Stats.TotalBeds)
	assert.Equal(t, map[string]int{"A+": 12, "O+": 8, "B-": 3, "AB+": 5}, seed.Stats.BloodBank)
}

func TestNewSeedMedicineShape(t *testing.T) {
	seed := NewSeed(rand.New(rand.NewSource(42)))

	names := make(map[string]bool, len(seed.Medicines))
	var lowStock int
	for i, m := range seed.Medicines {
		assert.Equal(t, fmt.Sprintf("m%d", i+1), m.ID)
		assert.Equal(t, 20, m.MinLevel)
		assert.Positive(t, m.Price)
		assert.GreaterOrEqual(t, m.Stock, 0)
		assert.False(t, names[m.Name], "medicine names must be unique: %s", m.Name)
		names[m.Name] = true
		if m.IsLowStock() {
			lowStock++
		}
	}

	// Second and third name rounds carry a type suffix to stay distinct.
	assert.NotContains(t, seed.Medicines[0].Name, "Type-")
	assert.Contains(t, seed.Medicines[30].Name, "Type-B")
	assert.Contains(t, seed.Medicines[60].Name, "Type-C")

	// Roughly a fifth of the stock draws land below the reorder level.
	assert.Greater(t, lowStock, 0)
	assert.Less(t, lowStock, 50)
}

func TestLowStockPredicate(t *testing.T) {
	s := newTestStore(t)

	for _, m := range s.LowStockMedicines() {
		assert.Less(t, m.Stock, m.MinLevel)
	}

	// Boundary: stock equal to the minimum level is not low.
	s.UpdateInventory("m1", 20)
	m, _ := s.MedicineByID("m1")
	assert.False(t, m.IsLowStock())

	s.UpdateInventory("m1", 19)
	m, _ = s.MedicineByID("m1")
	assert.True(t, m.IsLowStock())
}
