package services_test

import (
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockTokenRepository is a mock implementation of repositories.TokenRepository
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Create(token *models.Token) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockTokenRepository) GetByKey(key string) (*models.Token, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Token), args.Error(1)
}

func (m *MockTokenRepository) GetByAccount(accountID string) (*models.Token, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Token), args.Error(1)
}

func testAccount(t *testing.T, password string) *models.Account {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return &models.Account{
		ID:       "acc-1",
		Username: "victo",
		Password: string(hashed),
		IsActive: true,
	}
}

func TestAuthService_LoginMintsToken(t *testing.T) {
	mockAccounts := new(MockAccountRepository)
	mockTokens := new(MockTokenRepository)
	service := services.NewAuthService(mockAccounts, mockTokens)

	account := testAccount(t, "1234")

	mockAccounts.On("GetByUsername", "victo").Return(account, nil).Once()
	mockTokens.On("GetByAccount", "acc-1").Return(nil, fmt.Errorf("token for account acc-1 not found")).Once()
	mockTokens.On("Create", mock.AnythingOfType("*models.Token")).Return(nil).Once()

	key, err := service.Login("victo", "1234")
	assert.NoError(t, err)
	assert.Len(t, key, 40)

	mockAccounts.AssertExpectations(t)
	mockTokens.AssertExpectations(t)
}

func TestAuthService_LoginIsIdempotent(t *testing.T) {
	mockAccounts := new(MockAccountRepository)
	mockTokens := new(MockTokenRepository)
	service := services.NewAuthService(mockAccounts, mockTokens)

	account := testAccount(t, "1234")
	existing := &models.Token{Key: "abcdef0123456789abcdef0123456789abcdef01", AccountID: "acc-1"}

	mockAccounts.On("GetByUsername", "victo").Return(account, nil).Twice()
	mockTokens.On("GetByAccount", "acc-1").Return(existing, nil).Twice()

	first, err := service.Login("victo", "1234")
	assert.NoError(t, err)
	second, err := service.Login("victo", "1234")
	assert.NoError(t, err)

	// Repeated logins return the identical key; no new token is minted.
	assert.Equal(t, first, second)
	assert.Equal(t, existing.Key, first)
	mockTokens.AssertNotCalled(t, "Create", mock.Anything)
	mockAccounts.AssertExpectations(t)
	mockTokens.AssertExpectations(t)
}

func TestAuthService_LoginBadCredentials(t *testing.T) {
	mockAccounts := new(MockAccountRepository)
	mockTokens := new(MockTokenRepository)
	service := services.NewAuthService(mockAccounts, mockTokens)

	account := testAccount(t, "1234")

	// Wrong password.
	mockAccounts.On("GetByUsername", "victo").Return(account, nil).Once()
	key, err := service.Login("victo", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.Empty(t, key)

	// Unknown username yields the exact same error, so the two cases are
	// indistinguishable to the caller.
	mockAccounts.On("GetByUsername", "ghost").Return(nil, fmt.Errorf("account with username ghost not found")).Once()
	key, err = service.Login("ghost", "1234")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.Empty(t, key)

	mockTokens.AssertNotCalled(t, "Create", mock.Anything)
	mockAccounts.AssertExpectations(t)
}

func TestAuthService_Authenticate(t *testing.T) {
	mockAccounts := new(MockAccountRepository)
	mockTokens := new(MockTokenRepository)
	service := services.NewAuthService(mockAccounts, mockTokens)

	account := testAccount(t, "1234")
	token := &models.Token{Key: "abcdef0123456789abcdef0123456789abcdef01", AccountID: "acc-1"}

	mockTokens.On("GetByKey", token.Key).Return(token, nil).Once()
	mockAccounts.On("GetByID", "acc-1").Return(account, nil).Once()

	got, err := service.Authenticate(token.Key)
	assert.NoError(t, err)
	assert.Equal(t, account, got)

	// Unknown key.
	mockTokens.On("GetByKey", "bogus").Return(nil, fmt.Errorf("token not found")).Once()
	got, err = service.Authenticate("bogus")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
	assert.Nil(t, got)

	mockAccounts.AssertExpectations(t)
	mockTokens.AssertExpectations(t)
}

func TestAuthService_AuthenticateInactiveAccount(t *testing.T) {
	mockAccounts := new(MockAccountRepository)
	mockTokens := new(MockTokenRepository)
	service := services.NewAuthService(mockAccounts, mockTokens)

	account := testAccount(t, "1234")
	account.IsActive = false
	token := &models.Token{Key: "abcdef0123456789abcdef0123456789abcdef01", AccountID: "acc-1"}

	mockTokens.On("GetByKey", token.Key).Return(token, nil).Once()
	mockAccounts.On("GetByID", "acc-1").Return(account, nil).Once()

	got, err := service.Authenticate(token.Key)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
	assert.Nil(t, got)

	mockAccounts.AssertExpectations(t)
	mockTokens.AssertExpectations(t)
}
