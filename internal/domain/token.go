package domain

import "time"

// RevokedToken blacklists a logged-out token by hash until it would have
// expired anyway.
type RevokedToken struct {
	TokenHash string
	ExpiresAt time.Time
}

type TokenRepository interface {
	// Revoke records the token hash. Revoking the same hash twice is a no-op.
	Revoke(tokenHash string, expiresAt time.Time) error
	IsRevoked(tokenHash string) (bool, error)
}
