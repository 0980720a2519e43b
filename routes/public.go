package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/shopcraft/storefront/controllers/cart"
	productControllers "github.com/shopcraft/storefront/controllers/product"
	"github.com/shopcraft/storefront/services"
)

// SetupPublicRoutes registers endpoints that need no authentication:
// product browsing and viewing the session cart.
func SetupPublicRoutes(r *gin.Engine, products *services.ProductService) {
	r.GET("/products", productControllers.GetProducts(products))
	r.GET("/products/:id", productControllers.GetProductByID(products))
	r.GET("/cart", cartControllers.GetCart())
}
