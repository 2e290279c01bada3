// Package v1 exposes the store, AI gateway, and receipt artifact over an
// HTTP JSON API, one route per dashboard action.
package v1

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/syncromed/syncromed-api/internal/ai"
	"github.com/syncromed/syncromed-api/internal/config"
	"github.com/syncromed/syncromed-api/internal/domain"
	"github.com/syncromed/syncromed-api/internal/store"
	"github.com/syncromed/syncromed-api/pkg/auth"
	"github.com/syncromed/syncromed-api/pkg/metrics"
)

type Handler struct {
	store   *store.Store
	gateway *ai.Gateway
	jwt     *auth.JWTManager
	metrics *metrics.Collector
	log     *zap.Logger

	receipts atomic.Int64
}

// receiptSeq numbers receipts within the process lifetime. Receipts are
// display-only artifacts, so process-local uniqueness is all that matters.
func (h *Handler) receiptSeq() int {
	return int(h.receipts.Add(1))
}

func New(s *store.Store, gateway *ai.Gateway, jwtManager *auth.JWTManager, collector *metrics.Collector, log *zap.Logger) *Handler {
	return &Handler{
		store:   s,
		gateway: gateway,
		jwt:     jwtManager,
		metrics: collector,
		log:     log,
	}
}

func (h *Handler) Router(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins: cfg.CORS.AllowedOrigins,
			AllowMethods: cfg.CORS.AllowedMethods,
			AllowHeaders: cfg.CORS.AllowedHeaders,
			MaxAge:       cfg.CORS.MaxAge,
		}),
		Tracing(cfg.Tracing.ServiceName),
		Metrics(h.metrics),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", h.login)
		authGroup.POST("/register", h.register)
		authGroup.POST("/logout", h.logout)
	}

	protected := api.Group("")
	protected.Use(AuthRequired(h.jwt))
	{
		protected.GET("/dashboard", h.dashboard)
		protected.PUT("/ui/tab", h.setActiveTab)

		protected.GET("/stats", h.listStats)
		protected.GET("/doctors", h.listDoctors)
		protected.GET("/patients", h.listPatients)
		protected.GET("/appointments", h.listAppointments)
		protected.POST("/appointments", h.scheduleAppointment)
		protected.PATCH("/appointments/:id/status", h.updateAppointmentStatus)

		protected.GET("/medicines", h.listMedicines)
		protected.GET("/medicines/low-stock", h.listLowStockMedicines)
		protected.PATCH("/medicines/:id/stock",
			RequireRole(domain.RolePharmacist), h.updateInventory)

		protected.POST("/patients/:id/allocate",
			RequireRole(domain.RoleAdmin), h.allocatePatient)
		protected.POST("/patients/:id/records",
			RequireRole(domain.RoleDoctor), h.addMedicalRecord)
		protected.POST("/patients/:id/bills",
			RequireRole(domain.RolePharmacist, domain.RoleAdmin), h.generateBill)
		protected.POST("/patients/:id/bills/pay",
			RequireRole(domain.RolePatient), h.payBill)

		protected.GET("/messages", h.listMessages)
		protected.POST("/messages", h.sendMessage)

		protected.GET("/pharmacy/requests", h.listPharmacyRequests)
		protected.POST("/pharmacy/requests",
			RequireRole(domain.RoleDoctor), h.sendPharmacyRequest)
		protected.PATCH("/pharmacy/requests/:id/status",
			RequireRole(domain.RolePharmacist), h.updatePharmacyRequestStatus)

		aiGroup := protected.Group("/ai")
		{
			aiGroup.POST("/diagnosis", h.aiDiagnosis)
			aiGroup.POST("/prescriptions/explain", h.aiExplainPrescription)
			aiGroup.POST("/inflow", h.aiPredictInflow)
			aiGroup.POST("/inventory/forecast", h.aiForecastInventory)
		}
	}

	return router
}
