package spaces

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parkityourself/piys-backend/internal/apps"
	"github.com/parkityourself/piys-backend/internal/config"
	"gorm.io/gorm"
)

type SpacesPlugin struct{}

func New() *SpacesPlugin {
	return &SpacesPlugin{}
}

func (p *SpacesPlugin) ID() string { return "spaces" }

func (p *SpacesPlugin) Models() []interface{} {
	return []interface{}{&ParkingSpace{}}
}

func (p *SpacesPlugin) RegisterRoutes(router fiber.Router, guard []fiber.Handler, db *gorm.DB, cfg *config.Config) {
	handler := NewSpaceHandler(NewSpaceService(db))

	// Browsing available spaces is the public marketplace view.
	router.Get("/spaces", handler.ListAvailable)
	router.Post("/spaces", apps.Guarded(guard, handler.Create)...)
	router.Get("/my-spaces", apps.Guarded(guard, handler.ListMine)...)
}
