package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

const MaxDescriptionLength = 255

// Transaction is an immutable monetary event filed under a category.
// TransactionDate is a calendar date; the time component is always midnight
// UTC.
type Transaction struct {
	ID              int64           `json:"id"`
	AccountID       int32           `json:"accountId"`
	CategoryID      int32           `json:"categoryId"`
	Amount          decimal.Decimal `json:"amount"`
	Type            TransactionType `json:"type"`
	Description     *string         `json:"description,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// TransactionRecord is a transaction joined with its category for display.
type TransactionRecord struct {
	Transaction
	CategoryName string          `json:"categoryName"`
	CategoryType TransactionType `json:"categoryType"`
}

// TransactionFilters narrow a listing; each filter is independently optional
// and they combine conjunctively.
type TransactionFilters struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *int32
}

type TransactionRepository interface {
	// CreateWithBalance appends the transaction and applies its delta to the
	// account's balance row as one atomic unit. On any failure neither write
	// is visible.
	CreateWithBalance(transaction *Transaction) (int64, error)
	// ListByAccount returns the account's transactions joined with their
	// category, ordered by transaction date descending then id descending.
	ListByAccount(accountID int32, filters *TransactionFilters) ([]*TransactionRecord, error)
	// SumByAccount re-derives the account's totals from the transaction log.
	SumByAccount(accountID int32) (*BalanceTotals, error)
	// SummarizeRange sums the account's transactions with dates in
	// [start, end] inclusive. An empty window yields all-zero totals.
	SummarizeRange(accountID int32, start, end time.Time) (*ReportSummary, error)
}
