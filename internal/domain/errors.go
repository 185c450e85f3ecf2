package domain

import "errors"

// ErrorKind classifies domain failures so the transport boundary can translate
// them without inspecting messages.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindValidation
	KindConflict
	KindUnauthorized
	KindStorage
)

// Error is a domain failure carrying its kind and a caller-facing message.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound creates a not-found domain error
func NotFound(message string) *Error { return &Error{Kind: KindNotFound, Message: message} }

// Validation creates a validation domain error with a human-readable reason
func Validation(message string) *Error { return &Error{Kind: KindValidation, Message: message} }

// Conflict creates a conflict domain error
func Conflict(message string) *Error { return &Error{Kind: KindConflict, Message: message} }

// Unauthorized creates an unauthorized domain error
func Unauthorized(message string) *Error { return &Error{Kind: KindUnauthorized, Message: message} }

// Storage wraps an underlying store failure. The wrapped error is for logs
// only; callers never see internal storage detail.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "storage failure", Err: err}
}

// KindOf returns the kind of err. Unclassified errors count as storage
// failures.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStorage
}

// Domain errors
var (
	ErrUserNotFound       = NotFound("user not found")
	ErrAccountNotFound    = NotFound("business account not found")
	ErrCategoryNotFound   = NotFound("category not found")
	ErrBalanceNotFound    = NotFound("balance not found")
	ErrEmailTaken         = Conflict("email already registered")
	ErrInvalidCredentials = Unauthorized("invalid email or password")
	ErrTypeMismatch       = Validation("transaction type does not match the category type")
	ErrInvalidAmount      = Validation("amount must be greater than zero")
	ErrInvalidType        = Validation("unknown transaction type")
	ErrDescriptionTooLong = Validation("description exceeds maximum length")
	ErrUnknownPeriod      = Validation("unknown period")
)
