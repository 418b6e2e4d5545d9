package spaces

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parkityourself/piys-backend/internal/identity"
)

type SpaceHandler struct {
	service *SpaceService
}

func NewSpaceHandler(service *SpaceService) *SpaceHandler {
	return &SpaceHandler{service: service}
}

func (h *SpaceHandler) Create(c *fiber.Ctx) error {
	user, err := identity.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	var req CreateSpaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request body"})
	}

	if req.Title == "" || req.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "title and address are required"})
	}
	if req.HourlyRate <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "hourly_rate must be positive"})
	}
	if req.DailyRate != nil && *req.DailyRate <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "daily_rate must be positive when set"})
	}

	space, err := h.service.Create(user.ID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to create parking space"})
	}

	return c.Status(fiber.StatusCreated).JSON(space)
}

// ListAvailable is public; it backs the marketplace browse view.
func (h *SpaceHandler) ListAvailable(c *fiber.Ctx) error {
	list, err := h.service.ListAvailable()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to list parking spaces"})
	}

	return c.JSON(list)
}

func (h *SpaceHandler) ListMine(c *fiber.Ctx) error {
	user, err := identity.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	list, err := h.service.ListByOwner(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to list parking spaces"})
	}

	return c.JSON(list)
}
