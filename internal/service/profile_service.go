package service

import (
	"strings"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/google/uuid"
)

// ProfileService handles user profile reads and updates
type ProfileService struct {
	userRepo    domain.UserRepository
	accountRepo domain.AccountRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo domain.UserRepository, accountRepo domain.AccountRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo, accountRepo: accountRepo}
}

// Profile is the user's profile together with their default business account
type Profile struct {
	User             *domain.User `json:"user"`
	DefaultAccountID int32        `json:"defaultAccountId"`
	Business         BusinessInfo `json:"business"`
}

// GetProfile retrieves the user and their default business account
func (s *ProfileService) GetProfile(userID uuid.UUID) (*Profile, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetFirstByUser(userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:             user,
		DefaultAccountID: account.ID,
		Business:         BusinessInfo{Name: account.BusinessName, Currency: account.Currency},
	}, nil
}

// UpdateProfile updates the user's full name and, when provided, the default
// account's business name as one unit.
func (s *ProfileService) UpdateProfile(userID uuid.UUID, fullName string, businessName *string) (*Profile, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, domain.Validation("full name is required")
	}
	if len(fullName) > domain.MaxFullNameLength {
		return nil, domain.Validation("full name exceeds maximum length")
	}
	if businessName != nil {
		trimmed := strings.TrimSpace(*businessName)
		if trimmed == "" {
			return nil, domain.Validation("business name cannot be empty")
		}
		if len(trimmed) > domain.MaxBusinessNameLength {
			return nil, domain.Validation("business name exceeds maximum length")
		}
		businessName = &trimmed
	}

	account, err := s.accountRepo.GetFirstByUser(userID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateProfile(userID, fullName, account.ID, businessName); err != nil {
		return nil, err
	}

	return s.GetProfile(userID)
}
