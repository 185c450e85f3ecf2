package service

import (
	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/google/uuid"
)

// CategoryService handles the fixed per-account category catalog
type CategoryService struct {
	accountRepo  domain.AccountRepository
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(accountRepo domain.AccountRepository, categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{accountRepo: accountRepo, categoryRepo: categoryRepo}
}

// List retrieves the account's categories ordered by name ascending
func (s *CategoryService) List(userID uuid.UUID, accountID int32) ([]*domain.Category, error) {
	if _, err := assertOwnership(s.accountRepo, accountID, userID); err != nil {
		return nil, err
	}
	return s.categoryRepo.ListByAccount(accountID)
}

// SeedDefaults inserts the default categories for an account. Safe to call
// again for an already-seeded account.
func (s *CategoryService) SeedDefaults(accountID int32) error {
	return s.categoryRepo.SeedDefaults(accountID)
}
