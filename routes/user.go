package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/shopcraft/storefront/controllers/cart"
	userControllers "github.com/shopcraft/storefront/controllers/user"
	"github.com/shopcraft/storefront/middleware"
	"github.com/shopcraft/storefront/services"
)

// SetupUserRoutes registers login-protected endpoints: cart mutation,
// checkout, and the profile page.
func SetupUserRoutes(r *gin.Engine, users *services.UserService, products *services.ProductService) {
	userGroup := r.Group("/")
	userGroup.Use(middleware.RequireLogin)
	{
		userGroup.POST("/cart/items/:product_id", cartControllers.AddToCart(products))

		userGroup.GET("/checkout", cartControllers.GetCheckout())
		userGroup.POST("/checkout", cartControllers.Checkout())

		userGroup.GET("/profile", userControllers.GetProfile(users))
		userGroup.PUT("/profile", userControllers.UpdateProfile(users))
	}
}
