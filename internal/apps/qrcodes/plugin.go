package qrcodes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parkityourself/piys-backend/internal/apps"
	"github.com/parkityourself/piys-backend/internal/apps/spaces"
	"github.com/parkityourself/piys-backend/internal/config"
	"gorm.io/gorm"
)

type QRCodesPlugin struct{}

func New() *QRCodesPlugin {
	return &QRCodesPlugin{}
}

func (p *QRCodesPlugin) ID() string { return "qrcodes" }

func (p *QRCodesPlugin) Models() []interface{} {
	return []interface{}{&QRCode{}}
}

func (p *QRCodesPlugin) RegisterRoutes(router fiber.Router, guard []fiber.Handler, db *gorm.DB, cfg *config.Config) {
	handler := NewQRCodeHandler(NewQRCodeService(db, spaces.NewSpaceService(db)))

	router.Post("/qrcodes", apps.Guarded(guard, handler.Issue)...)
	// Scanning needs no account; the code itself is the capability.
	router.Post("/scan/:code", handler.Scan)
}
