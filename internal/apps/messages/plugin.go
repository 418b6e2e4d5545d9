package messages

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parkityourself/piys-backend/internal/apps"
	"github.com/parkityourself/piys-backend/internal/config"
	"gorm.io/gorm"
)

type MessagesPlugin struct{}

func New() *MessagesPlugin {
	return &MessagesPlugin{}
}

func (p *MessagesPlugin) ID() string { return "messages" }

func (p *MessagesPlugin) Models() []interface{} {
	return []interface{}{&Message{}}
}

func (p *MessagesPlugin) RegisterRoutes(router fiber.Router, guard []fiber.Handler, db *gorm.DB, cfg *config.Config) {
	handler := NewMessageHandler(NewMessageService(db))

	router.Post("/messages", apps.Guarded(guard, handler.Send)...)
	router.Get("/messages", apps.Guarded(guard, handler.List)...)
}
