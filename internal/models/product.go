package models

// Product represents a product listed in the store. Every product belongs to
// exactly one seller account; the seller is assigned server-side at creation
// and is never settable through a request payload.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"type:decimal(5,2)"`
	Quantity    int     `json:"quantity"`
	IsActive    bool    `json:"is_active"`
	SellerID    string  `json:"seller_id" gorm:"type:varchar(36);index"`
	Seller      Account `json:"-" gorm:"foreignKey:SellerID"`
}
