package handler

import (
	"net/http"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation   = "https://bukukas.app/errors/validation"
	ErrorTypeNotFound     = "https://bukukas.app/errors/not-found"
	ErrorTypeUnauthorized = "https://bukukas.app/errors/unauthorized"
	ErrorTypeForbidden    = "https://bukukas.app/errors/forbidden"
	ErrorTypeConflict     = "https://bukukas.app/errors/conflict"
	ErrorTypeInternal     = "https://bukukas.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewUnauthorizedError creates an unauthorized error response
func NewUnauthorizedError(c echo.Context, detail string) error {
	return c.JSON(http.StatusUnauthorized, ProblemDetails{
		Type:     ErrorTypeUnauthorized,
		Title:    "Unauthorized",
		Status:   http.StatusUnauthorized,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewConflictError creates a conflict error response
func NewConflictError(c echo.Context, detail string) error {
	return c.JSON(http.StatusConflict, ProblemDetails{
		Type:     ErrorTypeConflict,
		Title:    "Conflict",
		Status:   http.StatusConflict,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewDomainError translates a domain error into the matching problem
// response. Handlers use this as the fallback after any field-specific
// error handling.
func NewDomainError(c echo.Context, err error) error {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return NewNotFoundError(c, err.Error())
	case domain.KindValidation:
		return NewValidationError(c, err.Error(), nil)
	case domain.KindConflict:
		return NewConflictError(c, err.Error())
	case domain.KindUnauthorized:
		return NewUnauthorizedError(c, err.Error())
	default:
		log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Unhandled error")
		return NewInternalError(c, "An unexpected error occurred")
	}
}
