package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopcraft/storefront/logger"
	"github.com/shopcraft/storefront/services"
	"github.com/shopcraft/storefront/session"
)

// GET /cart
func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := session.Cart(c)
		c.JSON(http.StatusOK, gin.H{
			"lines":       cart.Lines,
			"grand_total": cart.Total(),
		})
	}
}

// AddToCart handles POST /cart/items/:product_id. The product is resolved
// against the catalog first; the cart then takes a name/price snapshot,
// incrementing the quantity when a line for the product already exists. An
// optional quantity form field defaults to 1.
func AddToCart(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		qty := 1
		if qtyStr := c.PostForm("quantity"); qtyStr != "" {
			qty, err = strconv.Atoi(qtyStr)
			if err != nil || qty < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
				return
			}
		}

		product, err := products.Get(uint(id))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product does not exist"})
				return
			}
			logger.Errorf("failed to resolve product %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		cart := session.Cart(c)
		cart.Add(*product, qty)
		if err := session.SaveCart(c, cart); err != nil {
			logger.Errorf("failed to save cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":     "Added " + product.Name + " to cart.",
			"lines":       cart.Lines,
			"grand_total": cart.Total(),
		})
	}
}

// GET /checkout
func GetCheckout() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := session.Cart(c)
		c.JSON(http.StatusOK, gin.H{
			"lines":       cart.Lines,
			"grand_total": cart.Total(),
		})
	}
}

// Checkout handles POST /checkout. This is a stub: no order record is
// written, the cart is simply cleared and a fresh empty one appears on the
// session's next cart access.
func Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := session.Cart(c)
		total := cart.Total()
		cart.Clear()
		if err := session.SaveCart(c, cart); err != nil {
			logger.Errorf("failed to clear cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":     "Order placed successfully!",
			"grand_total": total,
		})
	}
}
