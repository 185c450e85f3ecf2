package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is the denormalized running-total row kept per account for fast
// balance reads. Invariant: CurrentBalance = TotalIncome - TotalExpense.
type Balance struct {
	AccountID      int32           `json:"accountId"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// BalanceTotals is an account's totals independent of the accumulator row,
// as re-derived from the transaction log.
type BalanceTotals struct {
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

type BalanceRepository interface {
	// Get returns the account's accumulator row, ErrBalanceNotFound when no
	// row exists yet.
	Get(accountID int32) (*Balance, error)
	// ApplyDelta adds the deltas to the account's row, creating it when
	// absent. The store-level upsert is a single atomic increment so
	// concurrent same-account calls never lose an update.
	ApplyDelta(accountID int32, incomeDelta, expenseDelta decimal.Decimal) error
}
