package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/domains/user"
	"library-catalog/internal/shared/response"
	"library-catalog/pkg/logger"
)

// AuthHandler handles the /api/auth endpoints. Stateless; holds only
// the service dependency.
type AuthHandler struct {
	service user.Service
}

// NewAuthHandler creates the handler with its service injected.
func NewAuthHandler(service user.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register.
// 200 "User registered successfully" | 400 "User already exists"
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Text(c, http.StatusOK, "User registered successfully")
}

// Login handles POST /api/auth/login.
// 200 {"token": "..."} | 401 "Invalid username or password"
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// handleError maps domain errors to the HTTP statuses and bodies of the API.
func (h *AuthHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors

	switch {
	case errors.Is(err, user.ErrUsernameTaken):
		response.BadRequest(c, "User already exists")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid username or password")
	case errors.As(err, &validationErrs):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("auth request failed", err)
		response.InternalServerError(c)
	}
}
