package handler

import (
	"net/http"

	"github.com/bukukas/bukukas-backend/internal/middleware"
	"github.com/bukukas/bukukas-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdateProfileRequest represents the profile update request body
type UpdateProfileRequest struct {
	FullName     string  `json:"fullName"`
	BusinessName *string `json:"businessName,omitempty"`
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		return NewDomainError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	profile, err := h.profileService.UpdateProfile(userID, req.FullName, req.BusinessName)
	if err != nil {
		return NewDomainError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}
