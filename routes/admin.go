package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/shopcraft/storefront/controllers/admin"
	productControllers "github.com/shopcraft/storefront/controllers/product"
	"github.com/shopcraft/storefront/middleware"
	"github.com/shopcraft/storefront/services"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Every route passes
// through the admin capability gate before touching the catalog.
func SetupAdminRoutes(r *gin.Engine, users *services.UserService, products *services.ProductService) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireLogin, middleware.RequireAdmin(users))
	{
		adminGroup.GET("/panel", adminControllers.GetPanel(products, users))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(products))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(products))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(products))
		}
	}
}
