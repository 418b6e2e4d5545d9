package vehicles

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parkityourself/piys-backend/internal/apps"
	"github.com/parkityourself/piys-backend/internal/config"
	"gorm.io/gorm"
)

type VehiclesPlugin struct{}

func New() *VehiclesPlugin {
	return &VehiclesPlugin{}
}

func (p *VehiclesPlugin) ID() string { return "vehicles" }

func (p *VehiclesPlugin) Models() []interface{} {
	return []interface{}{&Vehicle{}}
}

func (p *VehiclesPlugin) RegisterRoutes(router fiber.Router, guard []fiber.Handler, db *gorm.DB, cfg *config.Config) {
	handler := NewVehicleHandler(NewVehicleService(db))

	router.Post("/vehicles", apps.Guarded(guard, handler.Create)...)
	router.Get("/vehicles", apps.Guarded(guard, handler.List)...)
	router.Delete("/vehicles/:id", apps.Guarded(guard, handler.Delete)...)
}
