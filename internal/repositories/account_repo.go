package repositories

import "storefront/internal/models"

// AccountRepository defines the interface for account data access.
type AccountRepository interface {
	Create(account *models.Account) error
	GetAll() ([]models.Account, error)
	GetByID(id string) (*models.Account, error)
	GetByUsername(username string) (*models.Account, error)
	Newest(limit int) ([]models.Account, error)
	Update(account *models.Account) error
}
