package handler

import (
	"errors"
	"net/http"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/bukukas/bukukas-backend/internal/middleware"
	"github.com/bukukas/bukukas-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	BusinessName string `json:"businessName"`
	Currency     string `json:"currency,omitempty"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /auth/register. Creates the user, their business
// account, a zero balance, and the default categories in one shot.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	result, err := h.authService.Register(service.RegisterInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Password:     req.Password,
		BusinessName: req.BusinessName,
		Currency:     req.Currency,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return NewConflictError(c, "Email is already registered")
		}
		return NewDomainError(c, err)
	}

	log.Info().Str("user_id", result.User.ID.String()).Msg("User registered")

	return c.JSON(http.StatusCreated, result)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return NewUnauthorizedError(c, "Invalid email or password")
		}
		return NewDomainError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Logout handles POST /auth/logout. The presented token goes on the
// revocation list until its natural expiry.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.GetToken(c)
	if err := h.authService.Logout(token); err != nil {
		return NewDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}
