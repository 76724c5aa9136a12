package repositories

import (
	"fmt"
	"sync"
	"time"

	"storefront/internal/models"
)

// MockTokenRepository is an in-memory implementation of TokenRepository.
type MockTokenRepository struct {
	tokens map[string]models.Token // keyed by token key
	mu     sync.RWMutex
}

// NewMockTokenRepository creates a new instance of MockTokenRepository.
func NewMockTokenRepository() *MockTokenRepository {
	return &MockTokenRepository{
		tokens: make(map[string]models.Token),
	}
}

// Create stores a new token.
func (r *MockTokenRepository) Create(token *models.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.tokens {
		if existing.AccountID == token.AccountID {
			return fmt.Errorf("token for account %s already exists", token.AccountID)
		}
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	r.tokens[token.Key] = *token
	return nil
}

// GetByKey returns a token by its key.
func (r *MockTokenRepository) GetByKey(key string) (*models.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.tokens[key]
	if !ok {
		return nil, fmt.Errorf("token not found")
	}
	return &token, nil
}

// GetByAccount returns the token bound to the given account, if any.
func (r *MockTokenRepository) GetByAccount(accountID string) (*models.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, token := range r.tokens {
		if token.AccountID == accountID {
			t := token
			return &t, nil
		}
	}
	return nil, fmt.Errorf("token for account %s not found", accountID)
}
