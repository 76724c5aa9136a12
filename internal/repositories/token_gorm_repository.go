package repositories

import (
	"fmt"
	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMTokenRepository is a GORM implementation of TokenRepository.
type GORMTokenRepository struct {
	db *gorm.DB
}

// NewGORMTokenRepository creates a new instance of GORMTokenRepository.
func NewGORMTokenRepository(db *gorm.DB) *GORMTokenRepository {
	return &GORMTokenRepository{
		db: db,
	}
}

// Create stores a new token in the database.
func (r *GORMTokenRepository) Create(token *models.Token) error {
	if err := r.db.Omit("Account").Create(token).Error; err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}
	return nil
}

// GetByKey retrieves a token by its key.
func (r *GORMTokenRepository) GetByKey(key string) (*models.Token, error) {
	var token models.Token
	if err := r.db.First(&token, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("token not found")
		}
		return nil, fmt.Errorf("failed to get token by key: %w", err)
	}
	return &token, nil
}

// GetByAccount retrieves the token bound to the given account, if any.
func (r *GORMTokenRepository) GetByAccount(accountID string) (*models.Token, error) {
	var token models.Token
	if err := r.db.First(&token, "account_id = ?", accountID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("token for account %s not found", accountID)
		}
		return nil, fmt.Errorf("failed to get token for account %s: %w", accountID, err)
	}
	return &token, nil
}
