package services_test

import (
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func TestProductService_List(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := []models.Product{
		{ID: "prod-1", Description: "Laptop", Price: 999.99, Quantity: 10, SellerID: "acc-1"},
		{ID: "prod-2", Description: "Keyboard", Price: 75.00, Quantity: 25, SellerID: "acc-1"},
	}

	mockRepo.On("GetAll").Return(expected, nil).Once()

	products, err := service.List()
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Get(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := &models.Product{ID: "prod-1", Description: "Laptop", Price: 999.99, SellerID: "acc-1"}

	mockRepo.On("GetByID", "prod-1").Return(expected, nil).Once()
	product, err := service.Get("prod-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	// A missing product surfaces as the not-found sentinel.
	mockRepo.On("GetByID", "prod-99").Return(nil, fmt.Errorf("product with ID prod-99 not found")).Once()
	product, err = service.Get("prod-99")
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Create(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	product := &models.Product{Description: "Mouse", Price: 25.00, Quantity: 50, SellerID: "acc-1"}

	mockRepo.On("Create", product).Return(nil).Once()
	err := service.Create(product)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	mockRepo.On("Create", product).Return(fmt.Errorf("database error")).Once()
	err = service.Create(product)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_Update(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	product := &models.Product{ID: "prod-1", Description: "Mouse", Price: 20.00, Quantity: 45, SellerID: "acc-1"}

	mockRepo.On("Update", product).Return(nil).Once()
	err := service.Update(product)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	mockRepo.On("Update", product).Return(fmt.Errorf("product with ID prod-1 not found for update")).Once()
	err = service.Update(product)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for update")
	mockRepo.AssertExpectations(t)
}
