package domain

type Category struct {
	ID        int32           `json:"id"`
	AccountID int32           `json:"accountId"`
	Name      string          `json:"name"`
	Type      TransactionType `json:"type"`
}

// DefaultCategories are seeded for every newly created account.
var DefaultCategories = []Category{
	{Name: "Sales", Type: TransactionTypeIncome},
	{Name: "Investment", Type: TransactionTypeIncome},
	{Name: "Operations", Type: TransactionTypeExpense},
	{Name: "Payroll", Type: TransactionTypeExpense},
}

type CategoryRepository interface {
	// SeedDefaults inserts the default categories for the account. Re-seeding
	// an account that already has them is a no-op, never an error.
	SeedDefaults(accountID int32) error
	GetByID(accountID int32, id int32) (*Category, error)
	// ListByAccount returns the account's categories ordered by name ascending.
	ListByAccount(accountID int32) ([]*Category, error)
}
