package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/bukukas/bukukas-backend/internal/middleware"
	"github.com/bukukas/bukukas-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the create transaction request body
type CreateTransactionRequest struct {
	CategoryID  int32   `json:"categoryId"`
	Amount      string  `json:"amount"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// CreateTransaction handles POST /accounts/:accountId/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	accountID := parseAccountID(c)
	if accountID == 0 {
		return NewValidationError(c, "Invalid account ID", nil)
	}

	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if req.CategoryID <= 0 {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "categoryId", Message: "Category ID is required"},
		})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	// Missing date means today
	transactionDate := time.Now()
	if req.Date != nil && *req.Date != "" {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		transactionDate = parsed
	}

	input := service.CreateTransactionInput{
		CategoryID:      req.CategoryID,
		Amount:          amount,
		Type:            domain.TransactionType(req.Type),
		Description:     req.Description,
		TransactionDate: transactionDate,
	}

	transaction, err := h.transactionService.Create(userID, accountID, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidType) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "type", Message: "Type must be one of: income, expense"},
			})
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Amount must be positive"},
			})
		}
		if errors.Is(err, domain.ErrDescriptionTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "description", Message: "Description must be 255 characters or less"},
			})
		}
		if errors.Is(err, domain.ErrTypeMismatch) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "type", Message: "Type does not match the category type"},
			})
		}
		return NewDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, transaction)
}

// ListTransactions handles GET /accounts/:accountId/transactions with
// optional startDate, endDate, and categoryId query filters
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	accountID := parseAccountID(c)
	if accountID == 0 {
		return NewValidationError(c, "Invalid account ID", nil)
	}

	filters := &domain.TransactionFilters{}

	if raw := c.QueryParam("startDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return NewValidationError(c, "Invalid startDate", []ValidationError{
				{Field: "startDate", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		filters.StartDate = &parsed
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return NewValidationError(c, "Invalid endDate", []ValidationError{
				{Field: "endDate", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		filters.EndDate = &parsed
	}
	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || id <= 0 {
			return NewValidationError(c, "Invalid categoryId", []ValidationError{
				{Field: "categoryId", Message: "Must be a positive integer"},
			})
		}
		categoryID := int32(id)
		filters.CategoryID = &categoryID
	}

	transactions, err := h.transactionService.List(userID, accountID, filters)
	if err != nil {
		return NewDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"transactions": transactions,
		"count":        len(transactions),
	})
}
