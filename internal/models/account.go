package models

import "time"

// Account represents a registered user of the store. Sellers may create and
// own products; superusers may activate or deactivate other accounts.
type Account struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username    string    `json:"username" gorm:"uniqueIndex;type:varchar(20)"`
	Password    string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	FirstName   string    `json:"first_name" gorm:"type:varchar(50)"`
	LastName    string    `json:"last_name" gorm:"type:varchar(50)"`
	IsSeller    bool      `json:"is_seller"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	DateJoined  time.Time `json:"date_joined" gorm:"autoCreateTime"`
}
