package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockAccountRepository is an in-memory implementation of AccountRepository.
type MockAccountRepository struct {
	accounts map[string]models.Account
	mu       sync.RWMutex
}

// NewMockAccountRepository creates a new instance of MockAccountRepository.
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]models.Account),
	}
}

// Create adds a new account.
func (r *MockAccountRepository) Create(account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if account.DateJoined.IsZero() {
		account.DateJoined = time.Now()
	}
	for _, existing := range r.accounts {
		if existing.Username == account.Username {
			return fmt.Errorf("account with username %s already exists", account.Username)
		}
	}
	r.accounts[account.ID] = *account
	return nil
}

// GetAll returns all accounts.
func (r *MockAccountRepository) GetAll() ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accountList := make([]models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		accountList = append(accountList, a)
	}
	return accountList, nil
}

// GetByID returns an account by its ID.
func (r *MockAccountRepository) GetByID(id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account with ID %s not found", id)
	}
	return &account, nil
}

// GetByUsername returns an account by its username.
func (r *MockAccountRepository) GetByUsername(username string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Username == username {
			a := account
			return &a, nil
		}
	}
	return nil, fmt.Errorf("account with username %s not found", username)
}

// Newest returns up to limit accounts ordered by join time, newest first.
func (r *MockAccountRepository) Newest(limit int) ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accountList := make([]models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		accountList = append(accountList, a)
	}
	sort.Slice(accountList, func(i, j int) bool {
		return accountList[i].DateJoined.After(accountList[j].DateJoined)
	})
	if limit < len(accountList) {
		accountList = accountList[:limit]
	}
	return accountList, nil
}

// Update modifies an existing account.
func (r *MockAccountRepository) Update(account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.accounts[account.ID]
	if !ok {
		return fmt.Errorf("account with ID %s not found for update", account.ID)
	}
	r.accounts[account.ID] = *account
	return nil
}
