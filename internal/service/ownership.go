package service

import (
	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/google/uuid"
)

// assertOwnership resolves an account scoped to its owning user. It is the
// single authorization choke point: every account-scoped service method calls
// it before touching any other store. Returns domain.ErrAccountNotFound when
// the account does not exist or belongs to someone else.
func assertOwnership(repo domain.AccountRepository, accountID int32, userID uuid.UUID) (*domain.Account, error) {
	return repo.GetByIDAndUser(accountID, userID)
}
