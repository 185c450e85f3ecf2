package handler

import (
	"net/http"

	"github.com/bukukas/bukukas-backend/internal/middleware"
	"github.com/bukukas/bukukas-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories handles GET /accounts/:accountId/categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	accountID := parseAccountID(c)
	if accountID == 0 {
		return NewValidationError(c, "Invalid account ID", nil)
	}

	categories, err := h.categoryService.List(userID, accountID)
	if err != nil {
		return NewDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"categories": categories,
	})
}
