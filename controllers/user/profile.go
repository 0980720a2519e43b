package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcraft/storefront/logger"
	"github.com/shopcraft/storefront/middleware"
	"github.com/shopcraft/storefront/services"
	"github.com/shopcraft/storefront/uploads"
)

// staticOrders is the placeholder order display shown on the profile page.
// Orders are not persisted anywhere in this system.
var staticOrders = []gin.H{
	{"id": 101, "item": "Pen", "status": "Delivered", "amount": "$10"},
	{"id": 102, "item": "Notebook", "status": "Pending", "amount": "$15"},
}

// GET /profile
func GetProfile(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.Get(middleware.UserID(c))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":   user,
			"orders": staticOrders,
		})
	}
}

// UpdateProfile handles PUT /profile: multipart form with username, email
// and an optional profile image upload.
func UpdateProfile(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		email := c.PostForm("email")
		if len(username) < 4 || len(username) > 50 || email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username (4-50 chars) and email are required"})
			return
		}

		imagePath := ""
		if file, err := c.FormFile("profile_image"); err == nil {
			imagePath = uploads.NewImagePath("profiles", file.Filename)
			diskPath, err := uploads.DiskPath(imagePath)
			if err != nil {
				logger.Errorf("failed to prepare upload dir: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile image"})
				return
			}
			if err := c.SaveUploadedFile(file, diskPath); err != nil {
				logger.Errorf("failed to save profile image: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile image"})
				return
			}
		}

		user, err := users.UpdateProfile(middleware.UserID(c), username, email, imagePath)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrUsernameTaken):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				logger.Errorf("failed to update profile: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Profile updated successfully!",
			"user":    user,
		})
	}
}
