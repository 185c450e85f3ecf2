package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is how long issued tokens stay valid.
const DefaultTokenTTL = 12 * time.Hour

const bcryptCost = 10

// AuthService handles registration, login, and token lifecycle
type AuthService struct {
	userRepo    domain.UserRepository
	accountRepo domain.AccountRepository
	tokenRepo   domain.TokenRepository
	jwtSecret   []byte
	tokenTTL    time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, accountRepo domain.AccountRepository, tokenRepo domain.TokenRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    DefaultTokenTTL,
	}
}

// RegisterInput holds the input for registering a user and their business
type RegisterInput struct {
	FullName     string
	Email        string
	Password     string
	BusinessName string
	Currency     string
}

// BusinessInfo is the business payload returned to clients
type BusinessInfo struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// AuthResult holds a token and the authenticated user's context
type AuthResult struct {
	Token            string       `json:"token"`
	User             *domain.User `json:"user"`
	DefaultAccountID int32        `json:"defaultAccountId"`
	Business         BusinessInfo `json:"business"`
}

// Register creates a user and their business account. The user row, account
// row, zero balance row, and default categories commit as one unit.
func (s *AuthService) Register(input RegisterInput) (*AuthResult, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, domain.Validation("full name is required")
	}
	if len(fullName) > domain.MaxFullNameLength {
		return nil, domain.Validation("full name exceeds maximum length")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.Validation("a valid email is required")
	}
	if len(input.Password) < domain.MinPasswordLength {
		return nil, domain.Validation("password must be at least 8 characters")
	}
	businessName := strings.TrimSpace(input.BusinessName)
	if businessName == "" {
		return nil, domain.Validation("business name is required")
	}
	if len(businessName) > domain.MaxBusinessNameLength {
		return nil, domain.Validation("business name exceeds maximum length")
	}
	currency := strings.TrimSpace(input.Currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, domain.Storage(err)
	}

	user := &domain.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
	}
	account := &domain.Account{
		BusinessName: businessName,
		Currency:     currency,
	}

	user, account, err = s.userRepo.CreateWithAccount(user, account)
	if err != nil {
		return nil, err
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:            token,
		User:             user,
		DefaultAccountID: account.ID,
		Business:         BusinessInfo{Name: account.BusinessName, Currency: account.Currency},
	}, nil
}

// Login authenticates a user by email and password. Both unknown email and
// wrong password surface the same error.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accountRepo.GetFirstByUser(user.ID)
	if err != nil {
		return nil, err
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:            token,
		User:             user,
		DefaultAccountID: account.ID,
		Business:         BusinessInfo{Name: account.BusinessName, Currency: account.Currency},
	}, nil
}

// Logout revokes the presented token until it would have expired anyway.
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	if claims, err := s.parseClaims(token); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return s.tokenRepo.Revoke(HashToken(token), expiresAt)
}

// IssueToken signs an HS256 token carrying the user ID as its subject
func (s *AuthService) IssueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", domain.Storage(err)
	}
	return token, nil
}

// ValidateToken checks the token's signature, expiry, and revocation status,
// returning the authenticated user's ID.
func (s *AuthService) ValidateToken(token string) (uuid.UUID, error) {
	claims, err := s.parseClaims(token)
	if err != nil {
		return uuid.Nil, domain.Unauthorized("invalid token")
	}

	revoked, err := s.tokenRepo.IsRevoked(HashToken(token))
	if err != nil {
		return uuid.Nil, err
	}
	if revoked {
		return uuid.Nil, domain.Unauthorized("token has been revoked")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.Unauthorized("invalid token subject")
	}
	return userID, nil
}

func (s *AuthService) parseClaims(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// HashToken reduces a token to the SHA-256 hex digest stored on the
// revocation list.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
