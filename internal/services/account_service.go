package services

import (
	"fmt"
	"log"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/serializers"
	"storefront/pkg/rabbitmq"

	"golang.org/x/crypto/bcrypt"
)

// AccountService handles business logic for account registration and
// account updates.
type AccountService struct {
	accountRepo repositories.AccountRepository
	mqClient    *rabbitmq.Client // optional; nil disables event publishing
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo repositories.AccountRepository, mqClient *rabbitmq.Client) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		mqClient:    mqClient,
	}
}

// Register creates a new account from a registration payload. The password
// is bcrypt-hashed before storage; the username must be unused.
func (s *AccountService) Register(req *serializers.RegisterRequest) (*models.Account, error) {
	if existing, err := s.accountRepo.GetByUsername(req.Username); err == nil && existing != nil {
		return nil, ErrUsernameTaken
	}

	account := req.Account()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	account.Password = string(hashedPassword)

	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishAccountRegistered(account.ID, account.Username); err != nil {
			// Event delivery is best-effort; the registration itself stands.
			log.Printf("Failed to publish account registered event: %v", err)
		}
	}

	return account, nil
}

// List retrieves all accounts.
func (s *AccountService) List() ([]models.Account, error) {
	return s.accountRepo.GetAll()
}

// Newest retrieves up to n accounts ordered by join time, newest first.
func (s *AccountService) Newest(n int) ([]models.Account, error) {
	return s.accountRepo.Newest(n)
}

// Get retrieves a single account by its ID.
func (s *AccountService) Get(id string) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return account, nil
}

// Update applies a partial update payload to the account. A changed username
// must still be unused; a new password is hashed before storage. The active
// flag is untouchable through this path.
func (s *AccountService) Update(account *models.Account, req *serializers.AccountUpdateRequest) error {
	if req.Username != nil && *req.Username != account.Username {
		if existing, err := s.accountRepo.GetByUsername(*req.Username); err == nil && existing != nil {
			return ErrUsernameTaken
		}
	}

	req.Apply(account)

	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		account.Password = string(hashedPassword)
	}

	if err := s.accountRepo.Update(account); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// SetActive flips the account's active flag and persists it. Everything else
// in the management payload has already been dropped by the serializer.
func (s *AccountService) SetActive(account *models.Account, active bool) error {
	account.IsActive = active
	if err := s.accountRepo.Update(account); err != nil {
		return fmt.Errorf("failed to update active flag: %w", err)
	}
	return nil
}
