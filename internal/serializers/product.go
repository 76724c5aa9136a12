package serializers

import "storefront/internal/models"

// ProductResponse is the flat list view of a product: every field exposed,
// the seller as a bare reference.
type ProductResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	IsActive    bool    `json:"is_active"`
	SellerID    string  `json:"seller_id"`
}

// NewProductResponse projects a product onto the flat list view.
func NewProductResponse(product *models.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		IsActive:    product.IsActive,
		SellerID:    product.SellerID,
	}
}

// NewProductListResponse projects a slice of products onto the flat list view.
func NewProductListResponse(products []models.Product) []ProductResponse {
	list := make([]ProductResponse, 0, len(products))
	for i := range products {
		list = append(list, NewProductResponse(&products[i]))
	}
	return list
}

// ProductDetailResponse is the detail view: the owning seller is nested as a
// read-only full-view account.
type ProductDetailResponse struct {
	ID          string          `json:"id"`
	Seller      AccountResponse `json:"seller"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Quantity    int             `json:"quantity"`
	IsActive    bool            `json:"is_active"`
}

// NewProductDetailResponse projects a product onto the detail view. The
// product's Seller association must be populated.
func NewProductDetailResponse(product *models.Product) ProductDetailResponse {
	return ProductDetailResponse{
		ID:          product.ID,
		Seller:      NewAccountResponse(&product.Seller),
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		IsActive:    product.IsActive,
	}
}

// ProductCreateRequest is the write view for product creation. There is no
// seller field: the owner is injected server-side from the authenticated
// actor.
type ProductCreateRequest struct {
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,price"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	IsActive    *bool   `json:"is_active"`
}

// Product builds a new product record owned by the given seller. A missing
// is_active defaults to true.
func (r *ProductCreateRequest) Product(seller *models.Account) *models.Product {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &models.Product{
		Description: r.Description,
		Price:       r.Price,
		Quantity:    r.Quantity,
		IsActive:    active,
		SellerID:    seller.ID,
		Seller:      *seller,
	}
}

// ProductUpdateRequest is the partial write view for product updates. Like
// creation, it carries no seller field.
type ProductUpdateRequest struct {
	Description *string  `json:"description" validate:"omitnil,min=1"`
	Price       *float64 `json:"price" validate:"omitnil,price"`
	Quantity    *int     `json:"quantity" validate:"omitnil,gte=0"`
	IsActive    *bool    `json:"is_active"`
}

// Apply copies the fields present in the payload onto the product.
func (r *ProductUpdateRequest) Apply(product *models.Product) {
	if r.Description != nil {
		product.Description = *r.Description
	}
	if r.Price != nil {
		product.Price = *r.Price
	}
	if r.Quantity != nil {
		product.Quantity = *r.Quantity
	}
	if r.IsActive != nil {
		product.IsActive = *r.IsActive
	}
}
