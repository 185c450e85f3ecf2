package testutil

import (
	"sort"
	"time"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	ByEmail  map[string]*domain.User
	ByID     map[uuid.UUID]*domain.User
	Accounts *MockAccountRepository
	UpdateFn func(userID uuid.UUID, fullName string, accountID int32, businessName *string) error
}

// NewMockUserRepository creates a new MockUserRepository. When accounts is
// non-nil, CreateWithAccount stores the account there too, mirroring the real
// repository's single-transaction behavior.
func NewMockUserRepository(accounts *MockAccountRepository) *MockUserRepository {
	return &MockUserRepository{
		ByEmail:  make(map[string]*domain.User),
		ByID:     make(map[uuid.UUID]*domain.User),
		Accounts: accounts,
	}
}

// GetByEmail retrieves a user by email
func (m *MockUserRepository) GetByEmail(email string) (*domain.User, error) {
	if user, ok := m.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// CreateWithAccount creates a user together with their business account
func (m *MockUserRepository) CreateWithAccount(user *domain.User, account *domain.Account) (*domain.User, *domain.Account, error) {
	if _, ok := m.ByEmail[user.Email]; ok {
		return nil, nil, domain.ErrEmailTaken
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	m.ByEmail[user.Email] = user
	m.ByID[user.ID] = user

	account.UserID = user.ID
	if m.Accounts != nil {
		m.Accounts.AddAccount(account)
	}
	return user, account, nil
}

// UpdateProfile updates the user's full name and optionally the account's
// business name
func (m *MockUserRepository) UpdateProfile(userID uuid.UUID, fullName string, accountID int32, businessName *string) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(userID, fullName, accountID, businessName)
	}
	user, ok := m.ByID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.FullName = fullName
	if businessName != nil && m.Accounts != nil {
		if account, ok := m.Accounts.Accounts[accountID]; ok {
			account.BusinessName = *businessName
		}
	}
	return nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.ByEmail[user.Email] = user
	m.ByID[user.ID] = user
}

// MockAccountRepository is a mock implementation of domain.AccountRepository
type MockAccountRepository struct {
	Accounts map[int32]*domain.Account
	NextID   int32
}

// NewMockAccountRepository creates a new MockAccountRepository
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		Accounts: make(map[int32]*domain.Account),
		NextID:   1,
	}
}

// GetByIDAndUser retrieves an account scoped to its owner
func (m *MockAccountRepository) GetByIDAndUser(id int32, userID uuid.UUID) (*domain.Account, error) {
	account, ok := m.Accounts[id]
	if !ok || account.UserID != userID {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// GetFirstByUser retrieves the user's first account
func (m *MockAccountRepository) GetFirstByUser(userID uuid.UUID) (*domain.Account, error) {
	var first *domain.Account
	for _, account := range m.Accounts {
		if account.UserID != userID {
			continue
		}
		if first == nil || account.ID < first.ID {
			first = account
		}
	}
	if first == nil {
		return nil, domain.ErrAccountNotFound
	}
	return first, nil
}

// AddAccount adds an account to the mock repository, assigning an ID when
// none is set (helper for tests)
func (m *MockAccountRepository) AddAccount(account *domain.Account) *domain.Account {
	if account.ID == 0 {
		account.ID = m.NextID
		m.NextID++
	} else if account.ID >= m.NextID {
		m.NextID = account.ID + 1
	}
	m.Accounts[account.ID] = account
	return account
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[int32]*domain.Category
	NextID     int32
	SeedCalls  []int32
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[int32]*domain.Category),
		NextID:     1,
	}
}

// SeedDefaults inserts the default categories for an account, skipping names
// that already exist
func (m *MockCategoryRepository) SeedDefaults(accountID int32) error {
	m.SeedCalls = append(m.SeedCalls, accountID)
	for _, def := range domain.DefaultCategories {
		if m.findByName(accountID, def.Name) != nil {
			continue
		}
		category := def
		category.ID = m.NextID
		category.AccountID = accountID
		m.NextID++
		m.Categories[category.ID] = &category
	}
	return nil
}

// GetByID retrieves a category scoped to an account
func (m *MockCategoryRepository) GetByID(accountID int32, id int32) (*domain.Category, error) {
	category, ok := m.Categories[id]
	if !ok || category.AccountID != accountID {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

// ListByAccount returns the account's categories ordered by name ascending
func (m *MockCategoryRepository) ListByAccount(accountID int32) ([]*domain.Category, error) {
	var categories []*domain.Category
	for _, category := range m.Categories {
		if category.AccountID == accountID {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(category *domain.Category) *domain.Category {
	if category.ID == 0 {
		category.ID = m.NextID
		m.NextID++
	} else if category.ID >= m.NextID {
		m.NextID = category.ID + 1
	}
	m.Categories[category.ID] = category
	return category
}

func (m *MockCategoryRepository) findByName(accountID int32, name string) *domain.Category {
	for _, category := range m.Categories {
		if category.AccountID == accountID && category.Name == name {
			return category
		}
	}
	return nil
}

// MockBalanceRepository is a mock implementation of domain.BalanceRepository
type MockBalanceRepository struct {
	Balances map[int32]*domain.Balance
	GetFn    func(accountID int32) (*domain.Balance, error)
}

// NewMockBalanceRepository creates a new MockBalanceRepository
func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{
		Balances: make(map[int32]*domain.Balance),
	}
}

// Get retrieves an account's balance row
func (m *MockBalanceRepository) Get(accountID int32) (*domain.Balance, error) {
	if m.GetFn != nil {
		return m.GetFn(accountID)
	}
	if balance, ok := m.Balances[accountID]; ok {
		return balance, nil
	}
	return nil, domain.ErrBalanceNotFound
}

// ApplyDelta adds the deltas to the account's balance row, creating it when
// absent
func (m *MockBalanceRepository) ApplyDelta(accountID int32, incomeDelta, expenseDelta decimal.Decimal) error {
	balance, ok := m.Balances[accountID]
	if !ok {
		balance = &domain.Balance{
			AccountID:      accountID,
			TotalIncome:    decimal.Zero,
			TotalExpense:   decimal.Zero,
			CurrentBalance: decimal.Zero,
		}
		m.Balances[accountID] = balance
	}
	balance.TotalIncome = balance.TotalIncome.Add(incomeDelta)
	balance.TotalExpense = balance.TotalExpense.Add(expenseDelta)
	balance.CurrentBalance = balance.CurrentBalance.Add(incomeDelta.Sub(expenseDelta))
	balance.UpdatedAt = time.Now()
	return nil
}

// MockTransactionRepository is a mock implementation of
// domain.TransactionRepository. When Balances is non-nil, CreateWithBalance
// applies the delta there too, mirroring the real repository's
// single-transaction behavior.
type MockTransactionRepository struct {
	Transactions map[int64]*domain.Transaction
	Categories   *MockCategoryRepository
	Balances     *MockBalanceRepository
	NextID       int64
	CreateFn     func(transaction *domain.Transaction) (int64, error)
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository(categories *MockCategoryRepository, balances *MockBalanceRepository) *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[int64]*domain.Transaction),
		Categories:   categories,
		Balances:     balances,
		NextID:       1,
	}
}

// CreateWithBalance appends the transaction and applies its delta to the
// account's balance row
func (m *MockTransactionRepository) CreateWithBalance(transaction *domain.Transaction) (int64, error) {
	if m.CreateFn != nil {
		return m.CreateFn(transaction)
	}
	transaction.ID = m.NextID
	transaction.CreatedAt = time.Now()
	m.NextID++
	m.Transactions[transaction.ID] = transaction

	if m.Balances != nil {
		incomeDelta, expenseDelta := decimal.Zero, decimal.Zero
		if transaction.Type == domain.TransactionTypeIncome {
			incomeDelta = transaction.Amount
		} else {
			expenseDelta = transaction.Amount
		}
		if err := m.Balances.ApplyDelta(transaction.AccountID, incomeDelta, expenseDelta); err != nil {
			return 0, err
		}
	}
	return transaction.ID, nil
}

// ListByAccount returns the account's transactions joined with their
// category, newest first
func (m *MockTransactionRepository) ListByAccount(accountID int32, filters *domain.TransactionFilters) ([]*domain.TransactionRecord, error) {
	var records []*domain.TransactionRecord
	for _, transaction := range m.Transactions {
		if transaction.AccountID != accountID {
			continue
		}
		if filters != nil {
			if filters.StartDate != nil && transaction.TransactionDate.Before(*filters.StartDate) {
				continue
			}
			if filters.EndDate != nil && transaction.TransactionDate.After(*filters.EndDate) {
				continue
			}
			if filters.CategoryID != nil && transaction.CategoryID != *filters.CategoryID {
				continue
			}
		}
		record := &domain.TransactionRecord{Transaction: *transaction}
		if m.Categories != nil {
			if category, ok := m.Categories.Categories[transaction.CategoryID]; ok {
				record.CategoryName = category.Name
				record.CategoryType = category.Type
			}
		}
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].TransactionDate.Equal(records[j].TransactionDate) {
			return records[i].TransactionDate.After(records[j].TransactionDate)
		}
		return records[i].ID > records[j].ID
	})
	return records, nil
}

// SumByAccount re-derives the account's totals from the stored transactions
func (m *MockTransactionRepository) SumByAccount(accountID int32) (*domain.BalanceTotals, error) {
	totals := &domain.BalanceTotals{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, transaction := range m.Transactions {
		if transaction.AccountID != accountID {
			continue
		}
		if transaction.Type == domain.TransactionTypeIncome {
			totals.TotalIncome = totals.TotalIncome.Add(transaction.Amount)
		} else {
			totals.TotalExpense = totals.TotalExpense.Add(transaction.Amount)
		}
	}
	totals.CurrentBalance = totals.TotalIncome.Sub(totals.TotalExpense)
	return totals, nil
}

// SummarizeRange sums the account's transactions with dates in [start, end]
// inclusive
func (m *MockTransactionRepository) SummarizeRange(accountID int32, start, end time.Time) (*domain.ReportSummary, error) {
	summary := &domain.ReportSummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, transaction := range m.Transactions {
		if transaction.AccountID != accountID {
			continue
		}
		if transaction.TransactionDate.Before(start) || transaction.TransactionDate.After(end) {
			continue
		}
		if transaction.Type == domain.TransactionTypeIncome {
			summary.TotalIncome = summary.TotalIncome.Add(transaction.Amount)
		} else {
			summary.TotalExpense = summary.TotalExpense.Add(transaction.Amount)
		}
		summary.TotalTransactions++
	}
	summary.NetProfit = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}

// MockTokenRepository is a mock implementation of domain.TokenRepository
type MockTokenRepository struct {
	Revoked map[string]time.Time
}

// NewMockTokenRepository creates a new MockTokenRepository
func NewMockTokenRepository() *MockTokenRepository {
	return &MockTokenRepository{
		Revoked: make(map[string]time.Time),
	}
}

// Revoke records the token hash
func (m *MockTokenRepository) Revoke(tokenHash string, expiresAt time.Time) error {
	m.Revoked[tokenHash] = expiresAt
	return nil
}

// IsRevoked reports whether the token hash is on the revocation list
func (m *MockTokenRepository) IsRevoked(tokenHash string) (bool, error) {
	expiresAt, ok := m.Revoked[tokenHash]
	return ok && expiresAt.After(time.Now()), nil
}

// MockStorageRefRepository is a mock implementation of
// domain.StorageRefRepository
type MockStorageRefRepository struct {
	Refs   []*domain.StorageRef
	NextID int64
	SaveFn func(ref *domain.StorageRef) error
}

// NewMockStorageRefRepository creates a new MockStorageRefRepository
func NewMockStorageRefRepository() *MockStorageRefRepository {
	return &MockStorageRefRepository{NextID: 1}
}

// Save records a storage reference
func (m *MockStorageRefRepository) Save(ref *domain.StorageRef) error {
	if m.SaveFn != nil {
		return m.SaveFn(ref)
	}
	ref.ID = m.NextID
	ref.CreatedAt = time.Now()
	m.NextID++
	m.Refs = append(m.Refs, ref)
	return nil
}
