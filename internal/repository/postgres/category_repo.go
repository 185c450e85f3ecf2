package postgres

import (
	"context"
	"errors"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// execer is satisfied by both *pgxpool.Pool and pgx.Tx so helpers can run
// inside or outside an explicit transaction.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// SeedDefaults inserts the default categories for an account. Insert-if-absent
// semantics make re-seeding a no-op.
func (r *CategoryRepository) SeedDefaults(accountID int32) error {
	ctx := context.Background()
	if err := seedDefaultCategories(ctx, r.pool, accountID); err != nil {
		return domain.Storage(err)
	}
	return nil
}

func seedDefaultCategories(ctx context.Context, db execer, accountID int32) error {
	for _, c := range domain.DefaultCategories {
		_, err := db.Exec(ctx,
			`INSERT INTO transaction_categories (account_id, name, type) VALUES ($1, $2, $3)
			 ON CONFLICT (account_id, name) DO NOTHING`,
			accountID, c.Name, string(c.Type),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves a category scoped to its account
func (r *CategoryRepository) GetByID(accountID int32, id int32) (*domain.Category, error) {
	ctx := context.Background()

	var category domain.Category
	err := r.pool.QueryRow(ctx,
		`SELECT id, account_id, name, type FROM transaction_categories WHERE account_id = $1 AND id = $2`,
		accountID, id,
	).Scan(&category.ID, &category.AccountID, &category.Name, &category.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, domain.Storage(err)
	}
	return &category, nil
}

// ListByAccount retrieves the account's categories ordered by name ascending
func (r *CategoryRepository) ListByAccount(accountID int32) ([]*domain.Category, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx,
		`SELECT id, account_id, name, type FROM transaction_categories WHERE account_id = $1 ORDER BY name ASC`,
		accountID,
	)
	if err != nil {
		return nil, domain.Storage(err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.AccountID, &category.Name, &category.Type); err != nil {
			return nil, domain.Storage(err)
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Storage(err)
	}
	return categories, nil
}
