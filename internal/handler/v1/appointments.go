package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syncromed/syncromed-api/internal/domain/appointment"
)

func (h *Handler) listAppointments(c *gin.Context) {
	respondOK(c, h.store.Appointments())
}

type scheduleAppointmentRequest struct {
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
}

func (h *Handler) scheduleAppointment(c *gin.Context) {
	var req scheduleAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	cmd := appointment.CreateAppointmentCommand{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    appointment.Status(req.Status),
	}
	if errs := cmd.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "validation failed", Fields: errs})
		return
	}

	respondCreated(c, h.store.ScheduleAppointment(cmd))
}

type updateAppointmentStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateAppointmentStatus(c *gin.Context) {
	var req updateAppointmentStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	status := appointment.Status(req.Status)
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: []string{"status is invalid"},
		})
		return
	}

	h.store.UpdateAppointmentStatus(c.Param("id"), status)
	respondAccepted(c)
}
