package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcraft/storefront/logger"
	"github.com/shopcraft/storefront/services"
)

// GET /admin/panel
func GetPanel(products *services.ProductService, users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		allProducts, err := products.All()
		if err != nil {
			logger.Errorf("failed to fetch products for admin panel: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		allUsers, err := users.All()
		if err != nil {
			logger.Errorf("failed to fetch users for admin panel: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": allProducts,
			"users":    allUsers,
		})
	}
}
