package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcraft/storefront/auth"
	"github.com/shopcraft/storefront/logger"
	"github.com/shopcraft/storefront/services"
	"github.com/shopcraft/storefront/session"
)

type RegisterInput struct {
	Username        string `json:"username" form:"username" binding:"required,min=4,max=50"`
	Email           string `json:"email" form:"email" binding:"required,email"`
	Password        string `json:"password" form:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
	Remember bool   `json:"remember" form:"remember"`
}

// POST /auth/register
func Register(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := users.Register(input.Username, input.Email, input.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrUsernameTaken):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				logger.Errorf("register failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Registration successful! Please login.",
			"user":    user,
		})
	}
}

// POST /auth/login
func Login(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := users.Authenticate(input.Email, input.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Login failed. Check your credentials."})
				return
			}
			logger.Errorf("login failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
			return
		}

		if err := session.SetLoginUser(c, user); err != nil {
			logger.Errorf("failed to save login session: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
			return
		}

		token, err := auth.IssueToken(user)
		if err != nil {
			logger.Errorf("failed to issue token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful!",
			"user":    user,
			"token":   token,
		})
	}
}

// POST /auth/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := session.ClearLogin(c); err != nil {
			logger.Errorf("failed to clear session: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
