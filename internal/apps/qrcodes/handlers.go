package qrcodes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/parkityourself/piys-backend/internal/identity"
)

type QRCodeHandler struct {
	service *QRCodeService
}

func NewQRCodeHandler(service *QRCodeService) *QRCodeHandler {
	return &QRCodeHandler{service: service}
}

func (h *QRCodeHandler) Issue(c *fiber.Ctx) error {
	user, err := identity.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "Unauthorized"})
	}

	var req CreateQRCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request body"})
	}

	spaceID, err := uuid.Parse(req.SpaceID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid space_id"})
	}

	record, err := h.service.Issue(user.ID, spaceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to issue QR code"})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// Scan is public: anyone with the code can resolve it to the listed space.
func (h *QRCodeHandler) Scan(c *fiber.Ctx) error {
	code := c.Params("code")

	space, record, err := h.service.Resolve(code)
	if err != nil {
		if errors.Is(err, ErrCodeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Invalid QR code"})
		}
		if errors.Is(err, ErrSpaceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Parking space not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Failed to resolve QR code"})
	}

	return c.JSON(ScanResponse{Space: space, QRCode: record})
}
