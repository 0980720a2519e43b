// Package session stores the login identity and the shopping cart in the
// cookie-backed session.
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/shopcraft/storefront/models"
)

const (
	loginUserKey = "LOGIN_USER_ID"
	cartKey      = "CART"
)

func init() {
	gob.Register(models.Cart{})
}

// SetLoginUser records the authenticated user's id in the session.
func SetLoginUser(c *gin.Context, user *models.User) error {
	s := sessions.Default(c)
	s.Set(loginUserKey, user.ID)
	return s.Save()
}

// LoginUserID returns the session's user id, or 0 when not logged in.
func LoginUserID(c *gin.Context) uint {
	s := sessions.Default(c)
	if obj := s.Get(loginUserKey); obj != nil {
		if id, ok := obj.(uint); ok {
			return id
		}
	}
	return 0
}

// IsLogin reports whether the session carries a login identity.
func IsLogin(c *gin.Context) bool {
	return LoginUserID(c) != 0
}

// ClearLogin drops the login identity but leaves the cart alone, so logging
// out does not empty a shopper's cart.
func ClearLogin(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(loginUserKey)
	return s.Save()
}

// Cart returns the session's cart, lazily creating an empty one on first
// access. Repeated calls on an initialized session are no-ops.
func Cart(c *gin.Context) models.Cart {
	s := sessions.Default(c)
	if obj := s.Get(cartKey); obj != nil {
		if cart, ok := obj.(models.Cart); ok {
			return cart
		}
	}
	return models.Cart{}
}

// SaveCart writes the cart back to the session store. Must be called after
// every mutation; the cart value is a copy, not a shared reference.
func SaveCart(c *gin.Context, cart models.Cart) error {
	s := sessions.Default(c)
	s.Set(cartKey, cart)
	return s.Save()
}
