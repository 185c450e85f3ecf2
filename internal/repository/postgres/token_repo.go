package postgres

import (
	"context"
	"time"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenRepository implements domain.TokenRepository using PostgreSQL
type TokenRepository struct {
	pool *pgxpool.Pool
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

// Revoke blacklists a token hash until its expiry. Revoking twice is a no-op.
func (r *TokenRepository) Revoke(tokenHash string, expiresAt time.Time) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO revoked_tokens (token_hash, expires_at) VALUES ($1, $2)
		 ON CONFLICT (token_hash) DO NOTHING`,
		tokenHash, pgtype.Timestamptz{Time: expiresAt, Valid: true},
	)
	if err != nil {
		return domain.Storage(err)
	}
	return nil
}

// IsRevoked reports whether the token hash is on the still-valid blacklist
func (r *TokenRepository) IsRevoked(tokenHash string) (bool, error) {
	ctx := context.Background()
	var revoked bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token_hash = $1 AND expires_at > now())`,
		tokenHash,
	).Scan(&revoked)
	if err != nil {
		return false, domain.Storage(err)
	}
	return revoked, nil
}
