package postgres

import (
	"context"
	"errors"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// upsertBalanceSQL is the accumulator update: one statement that creates the
// row or, if it exists, increments its totals. The increments are evaluated
// against the stored values under the row lock PostgreSQL takes for the
// update, so concurrent same-account writers serialize and no delta is lost.
// Writers on different accounts touch different rows and never block each
// other.
const upsertBalanceSQL = `
	INSERT INTO balances (account_id, total_income, total_expense, current_balance, updated_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (account_id) DO UPDATE SET
		total_income = balances.total_income + EXCLUDED.total_income,
		total_expense = balances.total_expense + EXCLUDED.total_expense,
		current_balance = balances.current_balance + EXCLUDED.current_balance,
		updated_at = now()`

// BalanceRepository implements domain.BalanceRepository using PostgreSQL
type BalanceRepository struct {
	pool *pgxpool.Pool
}

// NewBalanceRepository creates a new BalanceRepository
func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{pool: pool}
}

// Get retrieves the account's accumulator row
func (r *BalanceRepository) Get(accountID int32) (*domain.Balance, error) {
	ctx := context.Background()

	var (
		balance        domain.Balance
		totalIncome    pgtype.Numeric
		totalExpense   pgtype.Numeric
		currentBalance pgtype.Numeric
		updatedAt      pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx,
		`SELECT account_id, total_income, total_expense, current_balance, updated_at
		 FROM balances WHERE account_id = $1`,
		accountID,
	).Scan(&balance.AccountID, &totalIncome, &totalExpense, &currentBalance, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBalanceNotFound
		}
		return nil, domain.Storage(err)
	}
	balance.TotalIncome = pgNumericToDecimal(totalIncome)
	balance.TotalExpense = pgNumericToDecimal(totalExpense)
	balance.CurrentBalance = pgNumericToDecimal(currentBalance)
	balance.UpdatedAt = updatedAt.Time
	return &balance, nil
}

// ApplyDelta applies the add-or-create accumulator update outside any
// enclosing transaction.
func (r *BalanceRepository) ApplyDelta(accountID int32, incomeDelta, expenseDelta decimal.Decimal) error {
	ctx := context.Background()
	if err := applyBalanceDelta(ctx, r.pool, accountID, incomeDelta, expenseDelta); err != nil {
		return domain.Storage(err)
	}
	return nil
}

func applyBalanceDelta(ctx context.Context, db execer, accountID int32, incomeDelta, expenseDelta decimal.Decimal) error {
	income, err := decimalToPgNumeric(incomeDelta)
	if err != nil {
		return err
	}
	expense, err := decimalToPgNumeric(expenseDelta)
	if err != nil {
		return err
	}
	balanceDelta, err := decimalToPgNumeric(incomeDelta.Sub(expenseDelta))
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, upsertBalanceSQL, accountID, income, expense, balanceDelta)
	return err
}
