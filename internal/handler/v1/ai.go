package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/syncromed/syncromed-api/internal/ai"
)

// The AI endpoints never fail outward: the gateway degrades to fallback
// values and the response shape stays the same, so the dashboards keep
// their layout when the external service is down.

type diagnosisRequest struct {
	Symptoms string `json:"symptoms"`
	Vitals   string `json:"vitals"`
}

func (h *Handler) aiDiagnosis(c *gin.Context) {
	var req diagnosisRequest
	if !bindJSON(c, &req) {
		return
	}

	text := h.gateway.AnalyzeSymptoms(c.Request.Context(), req.Symptoms, req.Vitals)
	h.metrics.AICallsTotal.WithLabelValues("diagnosis", outcomeFor(text != ai.FallbackAnalyze)).Inc()
	respondOK(c, gin.H{"analysis": text})
}

type explainRequest struct {
	Prescription string `json:"prescription"`
}

func (h *Handler) aiExplainPrescription(c *gin.Context) {
	var req explainRequest
	if !bindJSON(c, &req) {
		return
	}

	text := h.gateway.ExplainPrescription(c.Request.Context(), req.Prescription)
	h.metrics.AICallsTotal.WithLabelValues("explain", outcomeFor(text != ai.FallbackExplain)).Inc()
	respondOK(c, gin.H{"explanation": text})
}

func (h *Handler) aiPredictInflow(c *gin.Context) {
	dayOfWeek := time.Now().Weekday().String()
	prediction := h.gateway.PredictInflow(c.Request.Context(), h.store.Stats(), dayOfWeek)
	h.metrics.AICallsTotal.WithLabelValues("inflow", outcomeFor(prediction != ai.OfflinePrediction())).Inc()
	respondOK(c, prediction)
}

// aiForecastInventory summarizes the first 20 medicines, the same slice
// the pharmacist dashboard sends.
func (h *Handler) aiForecastInventory(c *gin.Context) {
	meds := h.store.Medicines()
	if len(meds) > 20 {
		meds = meds[:20]
	}
	lines := make([]ai.StockLine, 0, len(meds))
	for _, m := range meds {
		lines = append(lines, ai.StockLine{Name: m.Name, Stock: m.Stock, MinLevel: m.MinLevel})
	}

	text := h.gateway.ForecastInventory(c.Request.Context(), lines)
	h.metrics.AICallsTotal.WithLabelValues("forecast", outcomeFor(text != ai.FallbackForecast)).Inc()
	respondOK(c, gin.H{"forecast": text})
}

func outcomeFor(ok bool) string {
	if ok {
		return "success"
	}
	return "fallback"
}
