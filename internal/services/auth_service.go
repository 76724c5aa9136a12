package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles credential verification and bearer token issuance.
type AuthService struct {
	accountRepo repositories.AccountRepository
	tokenRepo   repositories.TokenRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(accountRepo repositories.AccountRepository, tokenRepo repositories.TokenRepository) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
	}
}

// Login verifies the credentials and returns the account's bearer token. The
// token is minted on first login and reused on every later one, so repeated
// logins return the identical key. Unknown usernames and wrong passwords are
// deliberately indistinguishable.
func (s *AuthService) Login(username, password string) (string, error) {
	account, err := s.accountRepo.GetByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if token, err := s.tokenRepo.GetByAccount(account.ID); err == nil {
		return token.Key, nil
	}

	token := &models.Token{
		Key:       newTokenKey(),
		AccountID: account.ID,
	}
	if err := s.tokenRepo.Create(token); err != nil {
		return "", fmt.Errorf("failed to create token: %w", err)
	}
	return token.Key, nil
}

// Authenticate resolves a bearer token key to its account. Tokens of
// deactivated accounts are rejected.
func (s *AuthService) Authenticate(key string) (*models.Account, error) {
	token, err := s.tokenRepo.GetByKey(key)
	if err != nil {
		return nil, ErrInvalidToken
	}

	account, err := s.accountRepo.GetByID(token.AccountID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !account.IsActive {
		return nil, ErrInvalidToken
	}
	return account, nil
}

// newTokenKey returns a 40-character opaque hex key.
func newTokenKey() string {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("failed to read random bytes for token key: %v", err))
	}
	return hex.EncodeToString(buf)
}
