package service

import (
	"time"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/bukukas/bukukas-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService handles the append-only transaction log and the
// accumulator updates that ride along with it
type TransactionService struct {
	accountRepo     domain.AccountRepository
	categoryRepo    domain.CategoryRepository
	transactionRepo domain.TransactionRepository
	balanceRepo     domain.BalanceRepository
	publisher       websocket.EventPublisher
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(accountRepo domain.AccountRepository, categoryRepo domain.CategoryRepository, transactionRepo domain.TransactionRepository, balanceRepo domain.BalanceRepository, publisher websocket.EventPublisher) *TransactionService {
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}
	return &TransactionService{
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		balanceRepo:     balanceRepo,
		publisher:       publisher,
	}
}

// CreateTransactionInput holds the input for recording a transaction
type CreateTransactionInput struct {
	CategoryID      int32
	Amount          decimal.Decimal
	Type            domain.TransactionType
	Description     *string
	TransactionDate time.Time
}

// Create records a monetary event. All domain checks happen before any
// mutating store call; the append and the accumulator update then commit as
// one atomic unit.
func (s *TransactionService) Create(userID uuid.UUID, accountID int32, input CreateTransactionInput) (*domain.Transaction, error) {
	if _, err := assertOwnership(s.accountRepo, accountID, userID); err != nil {
		return nil, err
	}

	if !input.Type.Valid() {
		return nil, domain.ErrInvalidType
	}
	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if input.Description != nil && len(*input.Description) > domain.MaxDescriptionLength {
		return nil, domain.ErrDescriptionTooLong
	}

	category, err := s.categoryRepo.GetByID(accountID, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category.Type != input.Type {
		return nil, domain.ErrTypeMismatch
	}

	transaction := &domain.Transaction{
		AccountID:       accountID,
		CategoryID:      input.CategoryID,
		Amount:          input.Amount,
		Type:            input.Type,
		Description:     input.Description,
		TransactionDate: toCalendarDate(input.TransactionDate),
	}

	if _, err := s.transactionRepo.CreateWithBalance(transaction); err != nil {
		return nil, err
	}

	s.publisher.Publish(accountID, websocket.TransactionCreated(transaction))
	if balance, err := s.balanceRepo.Get(accountID); err == nil {
		s.publisher.Publish(accountID, websocket.BalanceUpdated(balance))
	}

	return transaction, nil
}

// List retrieves the account's transactions, newest first, optionally
// filtered by date range and category.
func (s *TransactionService) List(userID uuid.UUID, accountID int32, filters *domain.TransactionFilters) ([]*domain.TransactionRecord, error) {
	if _, err := assertOwnership(s.accountRepo, accountID, userID); err != nil {
		return nil, err
	}
	return s.transactionRepo.ListByAccount(accountID, filters)
}

// toCalendarDate truncates a timestamp to its calendar date at midnight UTC.
func toCalendarDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
