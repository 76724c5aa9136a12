package services

import (
	"fmt"
	"log"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"
)

// ProductService handles business logic related to products.
type ProductService struct {
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client // optional; nil disables event publishing
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// List retrieves all products.
func (s *ProductService) List() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// Get retrieves a single product, with its owning seller populated.
func (s *ProductService) Get(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create persists a new product. The owner has already been injected by the
// serializer from the authenticated actor.
func (s *ProductService) Create(product *models.Product) error {
	if err := s.productRepo.Create(product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishProductCreated(product.ID, product.SellerID); err != nil {
			// Event delivery is best-effort; the creation itself stands.
			log.Printf("Failed to publish product created event: %v", err)
		}
	}
	return nil
}

// Update persists changes to an existing product.
func (s *ProductService) Update(product *models.Product) error {
	if err := s.productRepo.Update(product); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}
