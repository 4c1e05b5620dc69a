package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohammedmokhtar77/Bank-System/internal/middleware"
)

// Authenticator defines the login operation used by AuthHandler.
type Authenticator interface {
	Login(email, credential string) (string, error)
}

// AuthHandler handles session HTTP requests.
type AuthHandler struct {
	auth Authenticator
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}
