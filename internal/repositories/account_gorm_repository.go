package repositories

import (
	"fmt"
	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAccountRepository is a GORM implementation of AccountRepository.
type GORMAccountRepository struct {
	db *gorm.DB
}

// NewGORMAccountRepository creates a new instance of GORMAccountRepository.
func NewGORMAccountRepository(db *gorm.DB) *GORMAccountRepository {
	return &GORMAccountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *GORMAccountRepository) Create(account *models.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetAll retrieves all accounts from the database.
func (r *GORMAccountRepository) GetAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all accounts: %w", err)
	}
	return accounts, nil
}

// GetByID retrieves a single account by its ID from the database.
func (r *GORMAccountRepository) GetByID(id string) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("account with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get account by ID %s: %w", id, err)
	}
	return &account, nil
}

// GetByUsername retrieves an account by its username from the database.
func (r *GORMAccountRepository) GetByUsername(username string) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, "username = ?", username).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("account with username %s not found", username)
		}
		return nil, fmt.Errorf("failed to get account by username %s: %w", username, err)
	}
	return &account, nil
}

// Newest retrieves up to limit accounts ordered by join time, newest first.
func (r *GORMAccountRepository) Newest(limit int) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Order("date_joined DESC").Limit(limit).Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get newest accounts: %w", err)
	}
	return accounts, nil
}

// Update updates an existing account in the database.
func (r *GORMAccountRepository) Update(account *models.Account) error {
	res := r.db.Save(account) // Save writes all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update account: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("account with ID %s not found for update", account.ID)
	}
	return nil
}
