package store

import (
	"fmt"
	"math/rand"

	"github.com/syncromed/syncromed-api/internal/domain"
	"github.com/syncromed/syncromed-api/internal/domain/appointment"
	"github.com/syncromed/syncromed-api/internal/domain/doctor"
	"github.com/syncromed/syncromed-api/internal/domain/medicine"
	"github.com/syncromed/syncromed-api/internal/domain/patient"
)

// Seed is the initial dataset the store takes ownership of.
type Seed struct {
	Admins       []*domain.User
	Doctors      []*doctor.Doctor
	Patients     []*patient.Patient
	Medicines    []*medicine.Medicine
	Appointments []*appointment.Appointment
	Stats        domain.HospitalStats
}

var medicineCategories = []string{
	"Antibiotic", "Analgesic", "Chronic", "Cardio", "Dermatology",
	"Neurology", "Vitamins", "Gastro", "Respiratory", "Psychiatry",
}

var medicineNames = []string{
	"Paracetamol", "Amoxicillin", "Metformin", "Ibuprofen", "Atorvastatin",
	"Omeprazole", "Aspirin", "Simvastatin", "Lisinopril", "Levothyroxine",
	"Amlodipine", "Metoprolol", "Losartan", "Azithromycin", "Gabapentin",
	"Hydrochlorothiazide", "Sertraline", "Furosemide", "Pantoprazole", "Prednisone",
	"Ciprofloxacin", "Doxycycline", "Clindamycin", "Cephalexin", "Naproxen",
	"Diclofenac", "Tramadol", "Codeine", "Morphine", "Oxycodone",
}

// NewSeed builds the demo dataset: 100 medicines with randomized stock
// (roughly a fifth start below the reorder level), two doctors, two
// patients, one admin, one appointment, and the fixed hospital stats.
func NewSeed(rng *rand.Rand) Seed {
	return Seed{
		Admins:       seedAdmins(),
		Doctors:      seedDoctors(),
		Patients:     seedPatients(),
		Medicines:    seedMedicines(rng),
		Appointments: seedAppointments(),
		Stats: domain.HospitalStats{
			OccupiedBeds: 45,
			TotalBeds:    60,
			BloodBank:    map[string]int{"A+": 12, "O+": 8, "B-": 3, "AB+": 5},
		},
	}
}

func seedMedicines(rng *rand.Rand) []*medicine.Medicine {
	meds := make([]*medicine.Medicine, 0, 100)
	for i := 0; i < 100; i++ {
		baseName := medicineNames[i%len(medicineNames)]
		suffix := ""
		if round := i / len(medicineNames); round > 0 {
			suffix = fmt.Sprintf(" Type-%c", 'A'+rune(round))
		}

		var stock int
		if rng.Float64() < 0.2 {
			stock = rng.Intn(15)
		} else {
			stock = rng.Intn(200) + 20
		}

		meds = append(meds, &medicine.Medicine{
			ID:       fmt.Sprintf("m%d", i+1),
			Name:     fmt.Sprintf("%s%s %dmg", baseName, suffix, 100+i*5),
			Category: medicineCategories[i%len(medicineCategories)],
			Stock:    stock,
			Price:    rng.Intn(500) + 20,
			Expiry:   fmt.Sprintf("202%d-%d-%d", 5+i%3, 1+i%11, 1+i%28),
			MinLevel: 20,
		})
	}
	return meds
}

func seedAdmins() []*domain.User {
	return []*domain.User{
		{
			ID:       "admin1",
			Name:     "Sarah Connor",
			Username: "admin",
			Email:    "admin@syncromed.ai",
			Phone:    "9876543210",
			Role:     domain.RoleAdmin,
			Avatar:   "https://picsum.photos/100/100?random=1",
		},
	}
}

func seedDoctors() []*doctor.Doctor {
	return []*doctor.Doctor{
		{
			User: domain.User{
				ID:       "doc1",
				Name:     "Dr. Gregory House",
				Username: "house",
				Email:    "house@syncromed.ai",
				Phone:    "9988776655",
				Role:     domain.RoleDoctor,
				Avatar:   "https://picsum.photos/100/100?random=2",
			},
			Specialty:          "Diagnostician",
			Schedule:           []string{"08:00", "09:00", "10:00", "11:00", "14:00"},
			AvailabilityStatus: doctor.StatusOnline,
			PatientsAssigned:   []string{"pat1"},
		},
		{
			User: domain.User{
				ID:       "doc2",
				Name:     "Dr. Meredith Grey",
				Username: "grey",
				Email:    "grey@syncromed.ai",
				Phone:    "9123456789",
				Role:     domain.RoleDoctor,
				Avatar:   "https://picsum.photos/100/100?random=3",
			},
			Specialty:          "General Surgery",
			Schedule:           []string{"13:00", "14:00", "15:00", "16:00", "17:00"},
			AvailabilityStatus: doctor.StatusBusy,
			PatientsAssigned:   []string{},
		},
	}
}

func seedPatients() []*patient.Patient {
	return []*patient.Patient{
		{
			User: domain.User{
				ID:       "pat1",
				Name:     "John Doe",
				Username: "john",
				Email:    "john@gmail.com",
				Phone:    "8877665544",
				Role:     domain.RolePatient,
				Avatar:   "https://picsum.photos/100/100?random=4",
			},
			Age:              34,
			Gender:           "Male",
			BloodType:        "O+",
			AssignedDoctorID: "doc1",
			Status:           patient.StatusAdmitted,
			Vitals:           &patient.Vitals{HeartRate: 88, BP: "120/80", Temp: 37.2},
			PendingBills:     4500,
			History: []patient.MedicalRecord{
				{
					ID:           "h1",
					Date:         "2024-01-10",
					DoctorID:     "doc1",
					Symptoms:     "Severe headache, nausea",
					Diagnosis:    "Migraine",
					Prescription: "Paracetamol, Rest",
					Notes:        "Patient advised to avoid bright lights.",
				},
			},
		},
		{
			User: domain.User{
				ID:       "pat2",
				Name:     "Jane Smith",
				Username: "jane",
				Email:    "jane@gmail.com",
				Phone:    "7766554433",
				Role:     domain.RolePatient,
				Avatar:   "https://picsum.photos/100/100?random=5",
			},
			Age:       28,
			Gender:    "Female",
			BloodType: "A+",
			Status:    patient.StatusOutpatient,
			Vitals:    &patient.Vitals{HeartRate: 72, BP: "118/75", Temp: 36.6},
			History:   []patient.MedicalRecord{},
		},
	}
}

func seedAppointments() []*appointment.Appointment {
	return []*appointment.Appointment{
		{
			ID:        "apt1",
			PatientID: "pat1",
			DoctorID:  "doc1",
			Date:      "2024-05-20",
			Time:      "10:00",
			Status:    appointment.StatusApproved,
		},
	}
}
