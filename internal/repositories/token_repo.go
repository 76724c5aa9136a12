package repositories

import "storefront/internal/models"

// TokenRepository defines the interface for bearer token data access.
type TokenRepository interface {
	Create(token *models.Token) error
	GetByKey(key string) (*models.Token, error)
	GetByAccount(accountID string) (*models.Token, error)
}
