package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listMedicines(c *gin.Context) {
	respondOK(c, h.store.Medicines())
}

func (h *Handler) listLowStockMedicines(c *gin.Context) {
	respondOK(c, h.store.LowStockMedicines())
}

type updateStockRequest struct {
	Stock *int `json:"stock"`
}

// updateInventory sets the stock level as given; the store does no
// clamping, matching the pharmacist dashboard's restock/dispense math.
func (h *Handler) updateInventory(c *gin.Context) {
	var req updateStockRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Stock == nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: []string{"stock is required"},
		})
		return
	}

	id := c.Param("id")
	if _, ok := h.store.MedicineByID(id); !ok {
		respondError(c, http.StatusNotFound, "medicine not found")
		return
	}

	h.store.UpdateInventory(id, *req.Stock)
	respondAccepted(c)
}
