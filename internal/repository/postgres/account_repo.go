package postgres

import (
	"context"
	"errors"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountRepository implements domain.AccountRepository using PostgreSQL
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// GetByIDAndUser retrieves an account scoped to its owning user
func (r *AccountRepository) GetByIDAndUser(id int32, userID uuid.UUID) (*domain.Account, error) {
	ctx := context.Background()
	return scanAccount(r.pool.QueryRow(ctx,
		`SELECT id, user_id, business_name, currency, created_at, updated_at
		 FROM accounts WHERE id = $1 AND user_id = $2`,
		id, pgUUID(userID),
	))
}

// GetFirstByUser retrieves the user's default (oldest) account
func (r *AccountRepository) GetFirstByUser(userID uuid.UUID) (*domain.Account, error) {
	ctx := context.Background()
	return scanAccount(r.pool.QueryRow(ctx,
		`SELECT id, user_id, business_name, currency, created_at, updated_at
		 FROM accounts WHERE user_id = $1 ORDER BY id ASC LIMIT 1`,
		pgUUID(userID),
	))
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account   domain.Account
		ownerID   pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&account.ID, &ownerID, &account.BusinessName, &account.Currency, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, domain.Storage(err)
	}
	account.UserID = uuid.UUID(ownerID.Bytes)
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time
	return &account, nil
}
