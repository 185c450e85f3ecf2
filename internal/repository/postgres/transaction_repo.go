package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// CreateWithBalance appends the transaction and applies its delta to the
// account's accumulator inside one database transaction. On any failure the
// whole unit rolls back and neither write is visible.
func (r *TransactionRepository) CreateWithBalance(transaction *domain.Transaction) (int64, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(transaction.Amount)
	if err != nil {
		return 0, domain.Storage(fmt.Errorf("invalid amount: %w", err))
	}

	transactionDate := pgtype.Date{Time: transaction.TransactionDate, Valid: true}

	var description pgtype.Text
	if transaction.Description != nil {
		description = pgtype.Text{String: *transaction.Description, Valid: true}
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, domain.Storage(err)
	}
	defer tx.Rollback(ctx)

	var (
		id        int64
		createdAt pgtype.Timestamptz
	)
	err = tx.QueryRow(ctx,
		`INSERT INTO transactions (account_id, category_id, amount, transaction_type, description, transaction_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		transaction.AccountID, transaction.CategoryID, amount, string(transaction.Type), description, transactionDate,
	).Scan(&id, &createdAt)
	if err != nil {
		return 0, domain.Storage(err)
	}

	incomeDelta, expenseDelta := decimal.Zero, decimal.Zero
	if transaction.Type == domain.TransactionTypeIncome {
		incomeDelta = transaction.Amount
	} else {
		expenseDelta = transaction.Amount
	}
	if err := applyBalanceDelta(ctx, tx, transaction.AccountID, incomeDelta, expenseDelta); err != nil {
		return 0, domain.Storage(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, domain.Storage(err)
	}

	transaction.ID = id
	transaction.CreatedAt = createdAt.Time
	return id, nil
}

// ListByAccount retrieves the account's transactions joined with their
// category. Filters combine conjunctively; ordering is transaction date
// descending, then id descending so same-date transactions come back
// newest-inserted first.
func (r *TransactionRepository) ListByAccount(accountID int32, filters *domain.TransactionFilters) ([]*domain.TransactionRecord, error) {
	ctx := context.Background()

	query := `SELECT t.id, t.account_id, t.category_id, t.amount, t.transaction_type, t.description,
	                 t.transaction_date, t.created_at, c.name, c.type
	          FROM transactions t
	          JOIN transaction_categories c ON c.id = t.category_id
	          WHERE t.account_id = $1`
	args := []any{accountID}

	if filters != nil {
		if filters.StartDate != nil {
			args = append(args, pgtype.Date{Time: *filters.StartDate, Valid: true})
			query += fmt.Sprintf(" AND t.transaction_date >= $%d", len(args))
		}
		if filters.EndDate != nil {
			args = append(args, pgtype.Date{Time: *filters.EndDate, Valid: true})
			query += fmt.Sprintf(" AND t.transaction_date <= $%d", len(args))
		}
		if filters.CategoryID != nil {
			args = append(args, *filters.CategoryID)
			query += fmt.Sprintf(" AND t.category_id = $%d", len(args))
		}
	}

	query += " ORDER BY t.transaction_date DESC, t.id DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.Storage(err)
	}
	defer rows.Close()

	var records []*domain.TransactionRecord
	for rows.Next() {
		var (
			record          domain.TransactionRecord
			amount          pgtype.Numeric
			description     pgtype.Text
			transactionDate pgtype.Date
			createdAt       pgtype.Timestamptz
		)
		err := rows.Scan(&record.ID, &record.AccountID, &record.CategoryID, &amount, &record.Type,
			&description, &transactionDate, &createdAt, &record.CategoryName, &record.CategoryType)
		if err != nil {
			return nil, domain.Storage(err)
		}
		record.Amount = pgNumericToDecimal(amount)
		if description.Valid {
			record.Description = &description.String
		}
		record.TransactionDate = transactionDate.Time
		record.CreatedAt = createdAt.Time
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Storage(err)
	}
	return records, nil
}

// SumByAccount re-derives the account's totals from the transaction log.
func (r *TransactionRepository) SumByAccount(accountID int32) (*domain.BalanceTotals, error) {
	ctx := context.Background()

	var totalIncome, totalExpense pgtype.Numeric
	err := r.pool.QueryRow(ctx,
		`SELECT
		    COALESCE(SUM(CASE WHEN transaction_type = 'income' THEN amount ELSE 0 END), 0),
		    COALESCE(SUM(CASE WHEN transaction_type = 'expense' THEN amount ELSE 0 END), 0)
		 FROM transactions WHERE account_id = $1`,
		accountID,
	).Scan(&totalIncome, &totalExpense)
	if err != nil {
		return nil, domain.Storage(err)
	}

	income := pgNumericToDecimal(totalIncome)
	expense := pgNumericToDecimal(totalExpense)
	return &domain.BalanceTotals{
		TotalIncome:    income,
		TotalExpense:   expense,
		CurrentBalance: income.Sub(expense),
	}, nil
}

// SummarizeRange sums the account's transactions with dates in [start, end]
// inclusive, grouped by type.
func (r *TransactionRepository) SummarizeRange(accountID int32, start, end time.Time) (*domain.ReportSummary, error) {
	ctx := context.Background()

	var (
		totalIncome, totalExpense pgtype.Numeric
		count                     int64
	)
	err := r.pool.QueryRow(ctx,
		`SELECT
		    COALESCE(SUM(CASE WHEN transaction_type = 'income' THEN amount ELSE 0 END), 0),
		    COALESCE(SUM(CASE WHEN transaction_type = 'expense' THEN amount ELSE 0 END), 0),
		    COUNT(*)
		 FROM transactions
		 WHERE account_id = $1 AND transaction_date BETWEEN $2 AND $3`,
		accountID,
		pgtype.Date{Time: start, Valid: true},
		pgtype.Date{Time: end, Valid: true},
	).Scan(&totalIncome, &totalExpense, &count)
	if err != nil {
		return nil, domain.Storage(err)
	}

	income := pgNumericToDecimal(totalIncome)
	expense := pgNumericToDecimal(totalExpense)
	return &domain.ReportSummary{
		TotalIncome:       income,
		TotalExpense:      expense,
		NetProfit:         income.Sub(expense),
		TotalTransactions: count,
	}, nil
}

// Helper functions

func decimalToPgNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var num pgtype.Numeric
	if err := num.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, err
	}
	return num, nil
}

func pgNumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	if n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
