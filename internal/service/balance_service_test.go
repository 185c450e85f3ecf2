package service

import (
	"errors"
	"testing"
	"time"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestGetBalance_FromAccumulator(t *testing.T) {
	f := newTransactionFixture(t)
	sales := f.categoryByName(t, "Sales")

	_, err := f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
		CategoryID:      sales.ID,
		Amount:          decimal.NewFromInt(100000),
		Type:            domain.TransactionTypeIncome,
		TransactionDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	balanceService := NewBalanceService(f.accounts, f.balances, f.txRepo)
	result, err := balanceService.GetBalance(f.userID, f.account.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !result.Totals.CurrentBalance.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("Expected current balance 100000, got %s", result.Totals.CurrentBalance)
	}
	if result.Totals.UpdatedAt == nil {
		t.Error("Expected UpdatedAt to be set when reading from the accumulator")
	}
	if result.Account.ID != f.account.ID {
		t.Errorf("Expected account ID %d, got %d", f.account.ID, result.Account.ID)
	}
}

func TestGetBalance_FallsBackToRecompute(t *testing.T) {
	f := newTransactionFixture(t)
	sales := f.categoryByName(t, "Sales")

	_, err := f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
		CategoryID:      sales.ID,
		Amount:          decimal.NewFromInt(50000),
		Type:            domain.TransactionTypeIncome,
		TransactionDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Simulate a missing accumulator row
	f.balances.GetFn = func(accountID int32) (*domain.Balance, error) {
		return nil, domain.ErrBalanceNotFound
	}

	balanceService := NewBalanceService(f.accounts, f.balances, f.txRepo)
	result, err := balanceService.GetBalance(f.userID, f.account.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !result.Totals.CurrentBalance.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("Expected recomputed balance 50000, got %s", result.Totals.CurrentBalance)
	}
	if result.Totals.UpdatedAt != nil {
		t.Error("Expected nil UpdatedAt when totals were re-derived")
	}
}

func TestGetBalance_StorageErrorPropagates(t *testing.T) {
	f := newTransactionFixture(t)

	storageErr := domain.Storage(errors.New("connection reset"))
	f.balances.GetFn = func(accountID int32) (*domain.Balance, error) {
		return nil, storageErr
	}

	balanceService := NewBalanceService(f.accounts, f.balances, f.txRepo)
	_, err := balanceService.GetBalance(f.userID, f.account.ID)
	if !errors.Is(err, storageErr) {
		t.Errorf("Expected storage error to propagate, got %v", err)
	}
}

func TestGetBalance_WrongUser(t *testing.T) {
	f := newTransactionFixture(t)

	balanceService := NewBalanceService(f.accounts, f.balances, f.txRepo)
	_, err := balanceService.GetBalance(uuid.New(), f.account.ID)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
}

func TestRecompute_NoTransactions(t *testing.T) {
	f := newTransactionFixture(t)

	balanceService := NewBalanceService(f.accounts, f.balances, f.txRepo)
	totals, err := balanceService.Recompute(f.account.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !totals.TotalIncome.IsZero() || !totals.TotalExpense.IsZero() || !totals.CurrentBalance.IsZero() {
		t.Errorf("Expected all-zero totals, got %+v", totals)
	}
}
