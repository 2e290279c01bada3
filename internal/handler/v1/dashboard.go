package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/syncromed/syncromed-api/internal/domain"
	"github.com/syncromed/syncromed-api/internal/domain/appointment"
	"github.com/syncromed/syncromed-api/internal/domain/message"
	"github.com/syncromed/syncromed-api/internal/domain/patient"
	"github.com/syncromed/syncromed-api/internal/domain/pharmacy"
)

// dashboardBuilders maps each role to its dashboard payload. Supporting a
// new role means adding a table entry, not editing a conditional chain.
var dashboardBuilders = map[domain.Role]func(h *Handler, claims *domain.Claims) (gin.H, bool){
	domain.RoleAdmin:      buildAdminDashboard,
	domain.RoleDoctor:     buildDoctorDashboard,
	domain.RolePatient:    buildPatientDashboard,
	domain.RolePharmacist: buildPharmacistDashboard,
}

func (h *Handler) dashboard(c *gin.Context) {
	claims := claimsFrom(c)

	build, ok := dashboardBuilders[claims.Role]
	if !ok {
		respondError(c, http.StatusForbidden, "no dashboard for role")
		return
	}
	payload, ok := build(h, claims)
	if !ok {
		respondError(c, http.StatusNotFound, "no record backs this session")
		return
	}
	payload["activeTab"] = h.store.ActiveTab()
	respondOK(c, payload)
}

func buildAdminDashboard(h *Handler, _ *domain.Claims) (gin.H, bool) {
	return gin.H{
		"stats":         h.store.Stats(),
		"doctors":       h.store.Doctors(),
		"patients":      h.store.Patients(),
		"appointments":  h.store.Appointments(),
		"lowStockCount": len(h.store.LowStockMedicines()),
	}, true
}

func buildDoctorDashboard(h *Handler, claims *domain.Claims) (gin.H, bool) {
	doc, ok := h.store.DoctorByID(claims.UserID)
	if !ok {
		return nil, false
	}

	var assigned []*patient.Patient
	for _, p := range h.store.Patients() {
		if doc.HasPatient(p.ID) {
			assigned = append(assigned, p)
		}
	}

	var pending []*appointment.Appointment
	for _, a := range h.store.Appointments() {
		if a.DoctorID == doc.ID && a.Status == appointment.StatusPending {
			pending = append(pending, a)
		}
	}

	var requests []*pharmacy.Request
	for _, r := range h.store.PharmacyRequests() {
		if r.DoctorID == doc.ID {
			requests = append(requests, r)
		}
	}

	return gin.H{
		"doctor":              doc,
		"assignedPatients":    assigned,
		"schedule":            doc.Schedule,
		"pendingAppointments": pending,
		"pharmacyRequests":    requests,
		"messages":            h.messagesFor(doc.ID),
	}, true
}

// buildPatientDashboard resolves the patient record by the session's email
// rather than its id; that join key is deliberate.
func buildPatientDashboard(h *Handler, claims *domain.Claims) (gin.H, bool) {
	me, ok := h.store.PatientByEmail(claims.Email)
	if !ok {
		return nil, false
	}

	var myDoctor any
	if me.AssignedDoctorID != "" {
		if doc, ok := h.store.DoctorByID(me.AssignedDoctorID); ok {
			myDoctor = doc
		}
	}

	var myAppointments []*appointment.Appointment
	for _, a := range h.store.Appointments() {
		if a.PatientID == me.ID {
			myAppointments = append(myAppointments, a)
		}
	}

	return gin.H{
		"patient":      me,
		"doctor":       myDoctor,
		"history":      me.History,
		"pendingBills": me.PendingBills,
		"appointments": myAppointments,
		"messages":     h.messagesFor(me.ID),
	}, true
}

func buildPharmacistDashboard(h *Handler, _ *domain.Claims) (gin.H, bool) {
	var pending []*pharmacy.Request
	for _, r := range h.store.PharmacyRequests() {
		if r.Status == pharmacy.StatusPending {
			pending = append(pending, r)
		}
	}

	return gin.H{
		"medicines":       h.store.Medicines(),
		"lowStock":        h.store.LowStockMedicines(),
		"pendingRequests": pending,
		"patients":        h.store.Patients(),
	}, true
}

// messagesFor filters the chat log to one participant's traffic.
func (h *Handler) messagesFor(userID string) []*message.Message {
	var out []*message.Message
	for _, m := range h.store.Messages() {
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out
}

func (h *Handler) listStats(c *gin.Context) {
	respondOK(c, h.store.Stats())
}

func (h *Handler) listDoctors(c *gin.Context) {
	respondOK(c, h.store.Doctors())
}

type setTabRequest struct {
	Tab string `json:"tab"`
}

func (h *Handler) setActiveTab(c *gin.Context) {
	var req setTabRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Tab) == "" {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: []string{"tab is required"},
		})
		return
	}
	h.store.SetActiveTab(req.Tab)
	respondAccepted(c)
}
