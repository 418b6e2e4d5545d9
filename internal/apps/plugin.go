package apps

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parkityourself/piys-backend/internal/config"
	"gorm.io/gorm"
)

// Plugin defines the interface every feature must implement.
type Plugin interface {
	// ID returns the unique feature identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts feature routes on the root router. Protected
	// routes prepend the guard chain (JWT check + user load); public routes
	// omit it. Guarding per route keeps public paths unaffected.
	RegisterRoutes(router fiber.Router, guard []fiber.Handler, db *gorm.DB, cfg *config.Config)
}

// Guarded prepends the guard chain to the final handler for a protected route.
func Guarded(guard []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(guard)+1)
	out = append(out, guard...)
	return append(out, h)
}
