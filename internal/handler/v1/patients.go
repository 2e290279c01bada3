package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/syncromed/syncromed-api/internal/billing"
	"github.com/syncromed/syncromed-api/internal/domain/patient"
)

func (h *Handler) listPatients(c *gin.Context) {
	respondOK(c, h.store.Patients())
}

type allocateRequest struct {
	DoctorID string `json:"doctorId"`
}

// allocatePatient reassigns the patient to the given doctor. Missing ids
// are guarded here; the store mutation itself is best-effort.
func (h *Handler) allocatePatient(c *gin.Context) {
	var req allocateRequest
	if !bindJSON(c, &req) {
		return
	}
	patientID := c.Param("id")

	if _, ok := h.store.PatientByID(patientID); !ok {
		respondError(c, http.StatusNotFound, "patient not found")
		return
	}
	if _, ok := h.store.DoctorByID(req.DoctorID); !ok {
		respondError(c, http.StatusNotFound, "doctor not found")
		return
	}

	h.store.AllocatePatient(patientID, req.DoctorID)
	respondAccepted(c)
}

type addRecordRequest struct {
	Date         string `json:"date"`
	Symptoms     string `json:"symptoms"`
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes"`
}

func (h *Handler) addMedicalRecord(c *gin.Context) {
	var req addRecordRequest
	if !bindJSON(c, &req) {
		return
	}
	claims := claimsFrom(c)

	cmd := patient.CreateRecordCommand{
		Date:         req.Date,
		Symptoms:     req.Symptoms,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
		Notes:        req.Notes,
		DoctorID:     claims.UserID,
	}
	if errs := cmd.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "validation failed", Fields: errs})
		return
	}

	h.store.AddMedicalRecord(c.Param("id"), cmd)
	respondAccepted(c)
}

type generateBillRequest struct {
	Amount int `json:"amount"`
}

func (h *Handler) generateBill(c *gin.Context) {
	var req generateBillRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: []string{"amount must be positive"},
		})
		return
	}

	h.store.GenerateBill(c.Param("id"), req.Amount)
	h.metrics.BillsIssuedTotal.Inc()
	respondAccepted(c)
}

// payBill emits the receipt artifact as a text download. The patient is
// resolved by the session's email join key; the pending-bills accumulator
// is deliberately left untouched.
func (h *Handler) payBill(c *gin.Context) {
	claims := claimsFrom(c)

	p, ok := h.store.PatientByEmail(claims.Email)
	if !ok {
		respondError(c, http.StatusNotFound, "patient record not found for session")
		return
	}
	if p.ID != c.Param("id") {
		respondError(c, http.StatusForbidden, "access denied")
		return
	}

	receipt := billing.BuildReceipt(p, time.Now(), 100000+h.receiptSeq())
	c.Header("Content-Disposition", `attachment; filename="`+receipt.Filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(receipt.Content))
}
