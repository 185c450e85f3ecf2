package service

import (
	"errors"
	"time"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/google/uuid"
)

// BalanceService answers balance reads from the accumulator, falling back to
// re-deriving from the transaction log when no accumulator row exists yet
type BalanceService struct {
	accountRepo     domain.AccountRepository
	balanceRepo     domain.BalanceRepository
	transactionRepo domain.TransactionRepository
}

// NewBalanceService creates a new BalanceService
func NewBalanceService(accountRepo domain.AccountRepository, balanceRepo domain.BalanceRepository, transactionRepo domain.TransactionRepository) *BalanceService {
	return &BalanceService{
		accountRepo:     accountRepo,
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
	}
}

// BalanceTotals is an account's totals; UpdatedAt is nil when they were
// re-derived from the transaction log rather than read from the accumulator.
type BalanceTotals struct {
	AccountID      int32      `json:"accountId"`
	domain.BalanceTotals
	UpdatedAt *time.Time `json:"updatedAt"`
}

// BalanceResult holds an account together with its totals
type BalanceResult struct {
	Account *domain.Account `json:"account"`
	Totals  BalanceTotals   `json:"totals"`
}

// GetBalance reads the account's totals: accumulator row when present (fast
// path), summed from the transaction log otherwise.
func (s *BalanceService) GetBalance(userID uuid.UUID, accountID int32) (*BalanceResult, error) {
	account, err := assertOwnership(s.accountRepo, accountID, userID)
	if err != nil {
		return nil, err
	}

	balance, err := s.balanceRepo.Get(accountID)
	if err == nil {
		return &BalanceResult{
			Account: account,
			Totals: BalanceTotals{
				AccountID: accountID,
				BalanceTotals: domain.BalanceTotals{
					TotalIncome:    balance.TotalIncome,
					TotalExpense:   balance.TotalExpense,
					CurrentBalance: balance.CurrentBalance,
				},
				UpdatedAt: &balance.UpdatedAt,
			},
		}, nil
	}
	if !errors.Is(err, domain.ErrBalanceNotFound) {
		return nil, err
	}

	totals, err := s.Recompute(accountID)
	if err != nil {
		return nil, err
	}
	return &BalanceResult{
		Account: account,
		Totals: BalanceTotals{
			AccountID:     accountID,
			BalanceTotals: *totals,
			UpdatedAt:     nil,
		},
	}, nil
}

// Recompute re-derives the account's totals by summing its transactions. At
// any quiescent point this must equal the accumulator row when one exists.
func (s *BalanceService) Recompute(accountID int32) (*domain.BalanceTotals, error) {
	return s.transactionRepo.SumByAccount(accountID)
}
