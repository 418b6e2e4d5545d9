package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/parkityourself/piys-backend/internal/config"
	"github.com/parkityourself/piys-backend/internal/dto"
	"github.com/parkityourself/piys-backend/internal/identity"
	"github.com/parkityourself/piys-backend/internal/services"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// LoadUser verifies the bearer token through services.ParseToken, resolves
// the subject to a user record, and stores it in locals. Runs after
// JWTProtected; a valid token for a deleted user is a 401, a store failure
// is a 500.
func LoadUser(cfg *config.Config, authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := identity.RawToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: missing bearer token",
			})
		}

		email, err := services.ParseToken(cfg.JWTSecret, raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		}

		user, err := authService.FindByEmail(email)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error:   true,
					Message: "Unauthorized: user not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Internal server error",
			})
		}

		identity.SetCurrentUser(c, user)
		return c.Next()
	}
}
