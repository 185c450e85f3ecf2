package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validation constants
const (
	MaxFullNameLength = 255
	MinPasswordLength = 8
)

type UserRepository interface {
	GetByEmail(email string) (*User, error)
	GetByID(id uuid.UUID) (*User, error)
	// CreateWithAccount registers a user and their business account as one
	// atomic unit: user row, account row, zero-valued balance row, and the
	// default categories either all become visible or none do.
	CreateWithAccount(user *User, account *Account) (*User, *Account, error)
	// UpdateProfile updates the user's full name and, when businessName is
	// non-nil, the account's business name in the same unit.
	UpdateProfile(userID uuid.UUID, fullName string, accountID int32, businessName *string) error
}
