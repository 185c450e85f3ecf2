package service

import (
	"errors"
	"testing"
	"time"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/bukukas/bukukas-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionFixture struct {
	userID   uuid.UUID
	account  *domain.Account
	accounts *testutil.MockAccountRepository
	catRepo  *testutil.MockCategoryRepository
	txRepo   *testutil.MockTransactionRepository
	balances *testutil.MockBalanceRepository
	service  *TransactionService
}

func newTransactionFixture(t *testing.T) *transactionFixture {
	t.Helper()

	accounts := testutil.NewMockAccountRepository()
	userID := uuid.New()
	account := accounts.AddAccount(&domain.Account{
		UserID:       userID,
		BusinessName: "Warung Maju",
		Currency:     "IDR",
	})

	catRepo := testutil.NewMockCategoryRepository()
	if err := catRepo.SeedDefaults(account.ID); err != nil {
		t.Fatalf("Failed to seed categories: %v", err)
	}

	balances := testutil.NewMockBalanceRepository()
	txRepo := testutil.NewMockTransactionRepository(catRepo, balances)

	return &transactionFixture{
		userID:   userID,
		account:  account,
		accounts: accounts,
		catRepo:  catRepo,
		txRepo:   txRepo,
		balances: balances,
		service:  NewTransactionService(accounts, catRepo, txRepo, balances, nil),
	}
}

func (f *transactionFixture) categoryByName(t *testing.T, name string) *domain.Category {
	t.Helper()
	categories, _ := f.catRepo.ListByAccount(f.account.ID)
	for _, category := range categories {
		if category.Name == name {
			return category
		}
	}
	t.Fatalf("Category %q not seeded", name)
	return nil
}

func TestCreateTransaction_IncomeThenExpense_BalanceMatches(t *testing.T) {
	f := newTransactionFixture(t)

	sales := f.categoryByName(t, "Sales")
	operations := f.categoryByName(t, "Operations")

	_, err := f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
		CategoryID:      sales.ID,
		Amount:          decimal.NewFromInt(100000),
		Type:            domain.TransactionTypeIncome,
		TransactionDate: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
		CategoryID:      operations.ID,
		Amount:          decimal.NewFromInt(30000),
		Type:            domain.TransactionTypeExpense,
		TransactionDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	balance, err := f.balances.Get(f.account.ID)
	if err != nil {
		t.Fatalf("Expected balance row, got %v", err)
	}

	if !balance.TotalIncome.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("Expected total income 100000, got %s", balance.TotalIncome)
	}
	if !balance.TotalExpense.Equal(decimal.NewFromInt(30000)) {
		t.Errorf("Expected total expense 30000, got %s", balance.TotalExpense)
	}
	if !balance.CurrentBalance.Equal(decimal.NewFromInt(70000)) {
		t.Errorf("Expected current balance 70000, got %s", balance.CurrentBalance)
	}

	// The accumulator must agree with totals re-derived from the log
	totals, err := f.txRepo.SumByAccount(f.account.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !totals.CurrentBalance.Equal(balance.CurrentBalance) {
		t.Errorf("Recomputed balance %s does not match accumulator %s", totals.CurrentBalance, balance.CurrentBalance)
	}
}

func TestCreateTransaction_AssignsIDAndCalendarDate(t *testing.T) {
	f := newTransactionFixture(t)
	sales := f.categoryByName(t, "Sales")

	transaction, err := f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
		CategoryID:      sales.ID,
		Amount:          decimal.NewFromInt(5000),
		Type:            domain.TransactionTypeIncome,
		TransactionDate: time.Date(2024, 6, 5, 17, 45, 12, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if transaction.ID == 0 {
		t.Error("Expected transaction ID to be assigned")
	}

	expected := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	if !transaction.TransactionDate.Equal(expected) {
		t.Errorf("Expected transaction date %s, got %s", expected, transaction.TransactionDate)
	}
}

func TestCreateTransaction_InvalidType(t *testing.T) {
	f := newTransactionFixture(t)
	sales := f.categoryByName(t, "Sales")

	_, err := f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
		CategoryID:      sales.ID,
		Amount:          decimal.NewFromInt(1000),
		Type:            domain.TransactionType("transfer"),
		TransactionDate: time.Now(),
	})
	if !errors.Is(err, domain.ErrInvalidType) {
		t.Errorf("Expected ErrInvalidType, got %v", err)
	}
}

func TestCreateTransaction_NonPositiveAmount(t *testing.T) {
	f := newTransactionFixture(t)
	sales := f.categoryByName(t, "Sales")

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-500)} {
		_, err := f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
			CategoryID:      sales.ID,
			Amount:          amount,
			Type:            domain.TransactionTypeIncome,
			TransactionDate: time.Now(),
		})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("Expected ErrInvalidAmount for amount %s, got %v", amount, err)
		}
	}
}

func TestCreateTransaction_TypeMismatch_LeavesStoresUntouched(t *testing.T) {
	f := newTransactionFixture(t)
	sales := f.categoryByName(t, "Sales")

	// Sales is an income category; an expense against it must be rejected
	_, err := f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
		CategoryID:      sales.ID,
		Amount:          decimal.NewFromInt(1000),
		Type:            domain.TransactionTypeExpense,
		TransactionDate: time.Now(),
	})
	if !errors.Is(err, domain.ErrTypeMismatch) {
		t.Fatalf("Expected ErrTypeMismatch, got %v", err)
	}

	if len(f.txRepo.Transactions) != 0 {
		t.Errorf("Expected no transactions stored, got %d", len(f.txRepo.Transactions))
	}
	if len(f.balances.Balances) != 0 {
		t.Errorf("Expected no balance rows, got %d", len(f.balances.Balances))
	}
}

func TestCreateTransaction_CategoryFromAnotherAccount(t *testing.T) {
	f := newTransactionFixture(t)

	// Category belonging to someone else's account
	other := f.catRepo.AddCategory(&domain.Category{
		AccountID: f.account.ID + 1,
		Name:      "Other Sales",
		Type:      domain.TransactionTypeIncome,
	})

	_, err := f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
		CategoryID:      other.ID,
		Amount:          decimal.NewFromInt(1000),
		Type:            domain.TransactionTypeIncome,
		TransactionDate: time.Now(),
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("Expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCreateTransaction_DescriptionTooLong(t *testing.T) {
	f := newTransactionFixture(t)
	sales := f.categoryByName(t, "Sales")

	long := make([]byte, domain.MaxDescriptionLength+1)
	for i := range long {
		long[i] = 'a'
	}
	description := string(long)

	_, err := f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
		CategoryID:      sales.ID,
		Amount:          decimal.NewFromInt(1000),
		Type:            domain.TransactionTypeIncome,
		Description:     &description,
		TransactionDate: time.Now(),
	})
	if !errors.Is(err, domain.ErrDescriptionTooLong) {
		t.Errorf("Expected ErrDescriptionTooLong, got %v", err)
	}
}

func TestCreateTransaction_WrongUser(t *testing.T) {
	f := newTransactionFixture(t)
	sales := f.categoryByName(t, "Sales")

	_, err := f.service.Create(uuid.New(), f.account.ID, CreateTransactionInput{
		CategoryID:      sales.ID,
		Amount:          decimal.NewFromInt(1000),
		Type:            domain.TransactionTypeIncome,
		TransactionDate: time.Now(),
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
}

func TestListTransactions_NewestFirst(t *testing.T) {
	f := newTransactionFixture(t)
	sales := f.categoryByName(t, "Sales")

	dates := []time.Time{
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}
	for _, date := range dates {
		_, err := f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
			CategoryID:      sales.ID,
			Amount:          decimal.NewFromInt(1000),
			Type:            domain.TransactionTypeIncome,
			TransactionDate: date,
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	records, err := f.service.List(f.userID, f.account.ID, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	for i := 1; i < len(records); i++ {
		if records[i].TransactionDate.After(records[i-1].TransactionDate) {
			t.Errorf("Expected descending date order, got %s before %s",
				records[i-1].TransactionDate, records[i].TransactionDate)
		}
	}

	if records[0].CategoryName != "Sales" {
		t.Errorf("Expected category name 'Sales', got %s", records[0].CategoryName)
	}
}

func TestListTransactions_SameDate_HigherIDFirst(t *testing.T) {
	f := newTransactionFixture(t)
	sales := f.categoryByName(t, "Sales")

	date := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
			CategoryID:      sales.ID,
			Amount:          decimal.NewFromInt(1000),
			Type:            domain.TransactionTypeIncome,
			TransactionDate: date,
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	records, err := f.service.List(f.userID, f.account.ID, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for i := 1; i < len(records); i++ {
		if records[i].ID > records[i-1].ID {
			t.Errorf("Expected descending ID order within a date, got %d before %d",
				records[i-1].ID, records[i].ID)
		}
	}
}

func TestListTransactions_Filters(t *testing.T) {
	f := newTransactionFixture(t)
	sales := f.categoryByName(t, "Sales")
	operations := f.categoryByName(t, "Operations")

	_, _ = f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
		CategoryID:      sales.ID,
		Amount:          decimal.NewFromInt(100000),
		Type:            domain.TransactionTypeIncome,
		TransactionDate: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	})
	_, _ = f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
		CategoryID:      operations.ID,
		Amount:          decimal.NewFromInt(30000),
		Type:            domain.TransactionTypeExpense,
		TransactionDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	// Date window covering June only
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	records, err := f.service.List(f.userID, f.account.ID, &domain.TransactionFilters{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record in June, got %d", len(records))
	}
	if records[0].CategoryName != "Sales" {
		t.Errorf("Expected the June record to be Sales, got %s", records[0].CategoryName)
	}

	// Category filter
	records, err = f.service.List(f.userID, f.account.ID, &domain.TransactionFilters{
		CategoryID: &operations.ID,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 Operations record, got %d", len(records))
	}
	if records[0].CategoryID != operations.ID {
		t.Errorf("Expected category ID %d, got %d", operations.ID, records[0].CategoryID)
	}
}

func TestListTransactions_WrongUser(t *testing.T) {
	f := newTransactionFixture(t)

	_, err := f.service.List(uuid.New(), f.account.ID, nil)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
}
