package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/syncromed/syncromed-api/internal/domain"
	"github.com/syncromed/syncromed-api/internal/store"
)

type loginRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type sessionResponse struct {
	Token     string      `json:"token"`
	ExpiresAt string      `json:"expiresAt"`
	User      domain.User `json:"user"`
}

// login authenticates by username + role lookup only; there is no
// credential to check. The wrong role for a valid username fails.
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	var fields []string
	if strings.TrimSpace(req.Username) == "" {
		fields = append(fields, "username is required")
	}
	role := domain.Role(req.Role)
	if !role.IsValid() {
		fields = append(fields, "role is invalid")
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "validation failed", Fields: fields})
		return
	}

	if !h.store.Login(req.Username, role) {
		h.metrics.LoginsTotal.WithLabelValues(req.Role, "failure").Inc()
		respondError(c, http.StatusUnauthorized, "no matching user for that username and role")
		return
	}
	h.metrics.LoginsTotal.WithLabelValues(req.Role, "success").Inc()

	user, _ := h.store.CurrentUser()
	h.respondWithToken(c, http.StatusOK, user)
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.store.Register(store.RegisterCommand{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	}, domain.Role(req.Role))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	h.metrics.RegistrationsTotal.WithLabelValues(req.Role).Inc()

	// Registration auto-logs in; issue the token in the same response.
	h.respondWithToken(c, http.StatusCreated, *user)
}

func (h *Handler) logout(c *gin.Context) {
	h.store.Logout()
	c.JSON(http.StatusOK, APIResponse[any]{Message: "logged out"})
}

func (h *Handler) respondWithToken(c *gin.Context, status int, user domain.User) {
	token, expiresAt, err := h.jwt.Generate(&domain.Claims{
		UserID:   user.ID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
	if err != nil {
		h.log.Error("failed to generate token", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(status, APIResponse[sessionResponse]{Data: sessionResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		User:      user,
	}})
}
