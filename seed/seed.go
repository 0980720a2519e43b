// Package seed bootstraps the initial admin account.
package seed

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shopcraft/storefront/logger"
	"github.com/shopcraft/storefront/models"
)

// Admin creates an admin user with the given explicit credentials if no
// account with that email exists yet. Idempotent: running it again against
// a seeded store is a no-op.
func Admin(db *gorm.DB, username, email, password string) error {
	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		logger.Infof("admin %s already exists, skipping seed", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("seed admin: lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: hash password: %w", err)
	}

	admin := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: create: %w", err)
	}
	logger.Infof("admin user %s created", email)
	return nil
}
