package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopcraft/storefront/logger"
	"github.com/shopcraft/storefront/services"
	"github.com/shopcraft/storefront/uploads"
)

// CreateProduct handles POST /admin/products: multipart form with name,
// price, optional description and an optional image upload. Without an
// image the product gets the shared placeholder path.
func CreateProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		description := c.PostForm("description")

		// Image is optional; stored files get a random name so concurrent
		// uploads of identically named files cannot clobber each other.
		imagePath := ""
		if file, err := c.FormFile("image"); err == nil {
			imagePath = uploads.NewImagePath("products", file.Filename)
			diskPath, err := uploads.DiskPath(imagePath)
			if err != nil {
				logger.Errorf("failed to prepare upload dir: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			if err := c.SaveUploadedFile(file, diskPath); err != nil {
				logger.Errorf("failed to save image: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
		}

		product, err := products.Create(name, price, description, imagePath)
		if err != nil {
			logger.Errorf("failed to create product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		logger.Infof("product %d (%s) created", product.ID, product.Name)
		c.JSON(http.StatusCreated, product)
	}
}
