package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/syncromed/syncromed-api/internal/domain/pharmacy"
)

func (h *Handler) listPharmacyRequests(c *gin.Context) {
	respondOK(c, h.store.PharmacyRequests())
}

type pharmacyRequestRequest struct {
	MedicineName string `json:"medicineName"`
}

func (h *Handler) sendPharmacyRequest(c *gin.Context) {
	var req pharmacyRequestRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.MedicineName) == "" {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: []string{"medicineName is required"},
		})
		return
	}

	if err := h.store.SendPharmacyRequest(req.MedicineName); err != nil {
		respondStoreError(c, err)
		return
	}
	h.metrics.PharmacyRequests.Inc()
	respondAccepted(c)
}

type updateRequestStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updatePharmacyRequestStatus(c *gin.Context) {
	var req updateRequestStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	status := pharmacy.RequestStatus(req.Status)
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: []string{"status is invalid"},
		})
		return
	}

	h.store.UpdatePharmacyRequestStatus(c.Param("id"), status)
	respondAccepted(c)
}
