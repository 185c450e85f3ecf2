package handler

import (
	"net/http"
	"strconv"

	"github.com/bukukas/bukukas-backend/internal/middleware"
	"github.com/bukukas/bukukas-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReport handles GET /accounts/:accountId/reports. Query parameters:
// period (monthly|weekly|custom, default monthly), month, year, startDate,
// endDate.
func (h *ReportHandler) GetReport(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	accountID := parseAccountID(c)
	if accountID == 0 {
		return NewValidationError(c, "Invalid account ID", nil)
	}

	query := service.ReportQuery{
		Period:    c.QueryParam("period"),
		StartDate: c.QueryParam("startDate"),
		EndDate:   c.QueryParam("endDate"),
	}

	if raw := c.QueryParam("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return NewValidationError(c, "Invalid month", []ValidationError{
				{Field: "month", Message: "Must be an integer between 1 and 12"},
			})
		}
		query.Month = month
	}
	if raw := c.QueryParam("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1 {
			return NewValidationError(c, "Invalid year", []ValidationError{
				{Field: "year", Message: "Must be a positive integer"},
			})
		}
		query.Year = year
	}

	result, err := h.reportService.GetReport(userID, accountID, query)
	if err != nil {
		return NewDomainError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
