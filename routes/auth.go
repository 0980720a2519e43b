package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/shopcraft/storefront/controllers/auth"
	"github.com/shopcraft/storefront/middleware"
	"github.com/shopcraft/storefront/services"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, users *services.UserService) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(users))
		authGroup.POST("/login", authControllers.Login(users))
		authGroup.POST("/logout", middleware.RequireLogin, authControllers.Logout())
	}
}
