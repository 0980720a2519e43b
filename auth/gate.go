package auth

import "github.com/shopcraft/storefront/models"

// CanAccessAdmin reports whether the actor may use catalog-mutating admin
// operations. A nil user means the request is unauthenticated. Pure
// predicate; translating a false result into a forbidden response is the
// caller's job.
func CanAccessAdmin(user *models.User) bool {
	return user != nil && user.IsAdmin
}
