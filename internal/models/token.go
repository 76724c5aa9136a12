package models

import "time"

// Token is an opaque bearer credential bound one-to-one to an account. It is
// minted lazily on first login and reused on every subsequent login until
// revoked, so repeated logins always yield the same key.
type Token struct {
	Key       string    `gorm:"primaryKey;type:varchar(40)"`
	AccountID string    `gorm:"uniqueIndex;type:varchar(36)"`
	Account   Account   `gorm:"foreignKey:AccountID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
