package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopcraft/storefront/services"
)

// SetupRoutes is the single entry point that wires up the public, auth,
// user, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	users := services.NewUserService(db)
	products := services.NewProductService(db)

	SetupAuthRoutes(r, users)
	SetupPublicRoutes(r, products)
	SetupUserRoutes(r, users, products)
	SetupAdminRoutes(r, users, products)
}
