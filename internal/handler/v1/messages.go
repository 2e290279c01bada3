package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listMessages(c *gin.Context) {
	respondOK(c, h.store.Messages())
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

func (h *Handler) sendMessage(c *gin.Context) {
	var req sendMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	var fields []string
	if strings.TrimSpace(req.ReceiverID) == "" {
		fields = append(fields, "receiverId is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		fields = append(fields, "content is required")
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "validation failed", Fields: fields})
		return
	}

	if err := h.store.SendMessage(req.ReceiverID, req.Content); err != nil {
		respondStoreError(c, err)
		return
	}
	h.metrics.MessagesSentTotal.Inc()
	respondAccepted(c)
}
