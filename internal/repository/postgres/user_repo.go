package postgres

import (
	"context"
	"errors"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*domain.User, error) {
	ctx := context.Background()

	var (
		id        pgtype.UUID
		createdAt pgtype.Timestamptz
		user      domain.User
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, full_name, password_hash, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&id, &user.Email, &user.FullName, &user.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.Storage(err)
	}
	user.ID = uuid.UUID(id.Bytes)
	user.CreatedAt = createdAt.Time
	return &user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(userID uuid.UUID) (*domain.User, error) {
	ctx := context.Background()

	var (
		id        pgtype.UUID
		createdAt pgtype.Timestamptz
		user      domain.User
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, full_name, password_hash, created_at FROM users WHERE id = $1`,
		pgUUID(userID),
	).Scan(&id, &user.Email, &user.FullName, &user.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.Storage(err)
	}
	user.ID = uuid.UUID(id.Bytes)
	user.CreatedAt = createdAt.Time
	return &user, nil
}

// CreateWithAccount registers the user and their business account in one
// database transaction: user, account, zero-valued balance row, and default
// categories all commit together or not at all.
func (r *UserRepository) CreateWithAccount(user *domain.User, account *domain.Account) (*domain.User, *domain.Account, error) {
	ctx := context.Background()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, nil, domain.Storage(err)
	}
	defer tx.Rollback(ctx)

	var (
		userID        pgtype.UUID
		userCreatedAt pgtype.Timestamptz
	)
	err = tx.QueryRow(ctx,
		`INSERT INTO users (email, full_name, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`,
		user.Email, user.FullName, user.PasswordHash,
	).Scan(&userID, &userCreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, nil, domain.ErrEmailTaken
		}
		return nil, nil, domain.Storage(err)
	}
	user.ID = uuid.UUID(userID.Bytes)
	user.CreatedAt = userCreatedAt.Time

	var (
		accCreatedAt pgtype.Timestamptz
		accUpdatedAt pgtype.Timestamptz
	)
	err = tx.QueryRow(ctx,
		`INSERT INTO accounts (user_id, business_name, currency) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`,
		userID, account.BusinessName, account.Currency,
	).Scan(&account.ID, &accCreatedAt, &accUpdatedAt)
	if err != nil {
		return nil, nil, domain.Storage(err)
	}
	account.UserID = user.ID
	account.CreatedAt = accCreatedAt.Time
	account.UpdatedAt = accUpdatedAt.Time

	// Lazy-creation also covers this, but seeding the row here keeps the
	// fast path available from the first balance read.
	_, err = tx.Exec(ctx,
		`INSERT INTO balances (account_id) VALUES ($1) ON CONFLICT (account_id) DO NOTHING`,
		account.ID,
	)
	if err != nil {
		return nil, nil, domain.Storage(err)
	}

	if err := seedDefaultCategories(ctx, tx, account.ID); err != nil {
		return nil, nil, domain.Storage(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, domain.Storage(err)
	}
	return user, account, nil
}

// UpdateProfile updates the user's full name and, when businessName is
// non-nil, the account's business name in the same transaction.
func (r *UserRepository) UpdateProfile(userID uuid.UUID, fullName string, accountID int32, businessName *string) error {
	ctx := context.Background()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Storage(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE users SET full_name = $1 WHERE id = $2`, fullName, pgUUID(userID))
	if err != nil {
		return domain.Storage(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	if businessName != nil {
		_, err = tx.Exec(ctx,
			`UPDATE accounts SET business_name = $1, updated_at = now() WHERE id = $2`,
			*businessName, accountID,
		)
		if err != nil {
			return domain.Storage(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Storage(err)
	}
	return nil
}

// Helper functions

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
