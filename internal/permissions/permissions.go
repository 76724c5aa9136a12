// Package permissions holds the authorization predicates evaluated per
// request. Every predicate is a pure function of the actor and the target
// resource; callers translate a false result into a 403 response.
package permissions

import (
	"net/http"

	"storefront/internal/models"
)

// IsSafeMethod reports whether the HTTP method is read-only. Safe methods are
// exempt from ownership and role checks.
func IsSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// CanCreateProduct reports whether the actor may create products. Reads are
// always allowed; creation requires the seller flag.
func CanCreateProduct(actor *models.Account, method string) bool {
	if IsSafeMethod(method) {
		return true
	}
	return actor != nil && actor.IsSeller
}

// CanWriteProduct reports whether the actor may mutate the given product.
// Reads are always allowed; mutation requires the actor to be a seller and to
// own the product.
func CanWriteProduct(actor *models.Account, product *models.Product, method string) bool {
	if IsSafeMethod(method) {
		return true
	}
	if actor == nil || !actor.IsSeller {
		return false
	}
	return actor.ID == product.SellerID
}

// CanModifyAccount reports whether the actor may update the target account
// through the standard update endpoint. Only the owning account qualifies.
func CanModifyAccount(actor, target *models.Account) bool {
	return actor != nil && target != nil && actor.ID == target.ID
}

// CanModifyActiveFlag reports whether the actor may flip an account's active
// flag. Superusers only.
func CanModifyActiveFlag(actor *models.Account) bool {
	return actor != nil && actor.IsSuperuser
}
