// Package serializers defines the wire representations of store records and
// the field-visibility rules each endpoint applies. Requests and responses
// are separate projections: a request struct only declares the fields its
// endpoint accepts, so restricted fields are dropped before they ever reach
// a model.
package serializers

import (
	"time"

	"storefront/internal/models"
)

// AccountResponse is the full read view of an account. The password hash is
// never part of it.
type AccountResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	IsSeller    bool      `json:"is_seller"`
	DateJoined  time.Time `json:"date_joined"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
}

// NewAccountResponse projects an account onto the full read view.
func NewAccountResponse(account *models.Account) AccountResponse {
	return AccountResponse{
		ID:          account.ID,
		Username:    account.Username,
		FirstName:   account.FirstName,
		LastName:    account.LastName,
		IsSeller:    account.IsSeller,
		DateJoined:  account.DateJoined,
		IsActive:    account.IsActive,
		IsSuperuser: account.IsSuperuser,
	}
}

// NewAccountListResponse projects a slice of accounts onto the full read view.
func NewAccountListResponse(accounts []models.Account) []AccountResponse {
	list := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		list = append(list, NewAccountResponse(&accounts[i]))
	}
	return list
}

// RegisterRequest is the write view for account registration. The password is
// write-only: it is hashed before storage and never echoed back.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,max=20"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	IsSeller  bool   `json:"is_seller"`
}

// Account builds a new account record from the registration payload. New
// accounts always start active and without superuser rights; those flags are
// read-only on this view.
func (r *RegisterRequest) Account() *models.Account {
	return &models.Account{
		Username:  r.Username,
		Password:  r.Password, // plaintext here, hashed by the service
		FirstName: r.FirstName,
		LastName:  r.LastName,
		IsSeller:  r.IsSeller,
		IsActive:  true,
	}
}

// AccountUpdateRequest is the partial write view for the standard account
// update endpoint. is_active and is_superuser have no field here, so payload
// attempts to change them are silently dropped.
type AccountUpdateRequest struct {
	Username  *string `json:"username" validate:"omitnil,min=1,max=20"`
	Password  *string `json:"password" validate:"omitnil,min=1"`
	FirstName *string `json:"first_name" validate:"omitnil,min=1,max=50"`
	LastName  *string `json:"last_name" validate:"omitnil,min=1,max=50"`
	IsSeller  *bool   `json:"is_seller"`
}

// Apply copies the fields present in the payload onto the account. The
// password is left to the service, which must hash it first.
func (r *AccountUpdateRequest) Apply(account *models.Account) {
	if r.Username != nil {
		account.Username = *r.Username
	}
	if r.FirstName != nil {
		account.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		account.LastName = *r.LastName
	}
	if r.IsSeller != nil {
		account.IsSeller = *r.IsSeller
	}
}

// ActiveFlagRequest is the management write view: every field except
// is_active is read-only, so only that flag can be applied.
type ActiveFlagRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// Apply sets the active flag, ignoring everything else in the payload.
func (r *ActiveFlagRequest) Apply(account *models.Account) {
	if r.IsActive != nil {
		account.IsActive = *r.IsActive
	}
}

// LoginRequest is a pure validation envelope for the authenticate step; it
// has no persisted representation.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
