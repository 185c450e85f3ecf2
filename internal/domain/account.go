package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is used when registration does not name one.
const DefaultCurrency = "IDR"

const MaxBusinessNameLength = 255

type Account struct {
	ID           int32     `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	BusinessName string    `json:"businessName"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type AccountRepository interface {
	// GetByIDAndUser returns the account only when it is owned by the given
	// user, ErrAccountNotFound otherwise. This is the ownership check every
	// account-scoped operation goes through.
	GetByIDAndUser(id int32, userID uuid.UUID) (*Account, error)
	GetFirstByUser(userID uuid.UUID) (*Account, error)
}
