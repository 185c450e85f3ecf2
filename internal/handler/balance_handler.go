package handler

import (
	"net/http"

	"github.com/bukukas/bukukas-backend/internal/middleware"
	"github.com/bukukas/bukukas-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BalanceHandler handles balance HTTP requests
type BalanceHandler struct {
	balanceService *service.BalanceService
}

// NewBalanceHandler creates a new BalanceHandler
func NewBalanceHandler(balanceService *service.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// GetBalance handles GET /accounts/:accountId/balance
func (h *BalanceHandler) GetBalance(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	accountID := parseAccountID(c)
	if accountID == 0 {
		return NewValidationError(c, "Invalid account ID", nil)
	}

	result, err := h.balanceService.GetBalance(userID, accountID)
	if err != nil {
		return NewDomainError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
