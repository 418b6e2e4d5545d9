package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/parkityourself/piys-backend/internal/models"
)

const userLocal = "current_user"

// RawToken returns the bearer token string the JWT guard stored in context.
func RawToken(c *fiber.Ctx) (string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token.Raw == "" {
		return "", errors.New("no bearer token in context")
	}
	return token.Raw, nil
}

// SetCurrentUser stores the resolved user record in Fiber context locals.
func SetCurrentUser(c *fiber.Ctx, user *models.User) {
	c.Locals(userLocal, user)
}

// CurrentUser returns the user record placed in locals by middleware.LoadUser.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(userLocal).(*models.User)
	if !ok || user == nil {
		return nil, errors.New("no authenticated user in context")
	}
	return user, nil
}
