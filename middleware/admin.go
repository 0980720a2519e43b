package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcraft/storefront/auth"
	"github.com/shopcraft/storefront/logger"
	"github.com/shopcraft/storefront/services"
)

// RequireAdmin runs after RequireLogin and checks the admin capability gate
// before any admin operation mutates or discloses anything. Non-admins get
// a forbidden response, not a hard failure; the catalog is untouched.
func RequireAdmin(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.Get(UserID(c))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			c.Abort()
			return
		}
		if !auth.CanAccessAdmin(user) {
			logger.Warningf("user %d denied admin access to %s", user.ID, c.FullPath())
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
