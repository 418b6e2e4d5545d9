package qrcodes

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/parkityourself/piys-backend/internal/apps/spaces"
	"gorm.io/gorm"
)

var (
	ErrCodeNotFound  = errors.New("invalid QR code")
	ErrSpaceNotFound = errors.New("parking space not found")
)

// Attempts at generating a non-colliding code before giving up. With 36^8
// codes a retry is already rare; the unique index is the backstop for races.
const issueAttempts = 5

type QRCodeService struct {
	db     *gorm.DB
	spaces *spaces.SpaceService
}

func NewQRCodeService(db *gorm.DB, spaceService *spaces.SpaceService) *QRCodeService {
	return &QRCodeService{db: db, spaces: spaceService}
}

// Issue generates a fresh unique code for the space, renders the payload as a
// scannable image, and persists the binding.
func (s *QRCodeService) Issue(ownerID, spaceID uuid.UUID) (*QRCode, error) {
	for attempt := 0; attempt < issueAttempts; attempt++ {
		code, err := GenerateUniqueCode()
		if err != nil {
			return nil, err
		}

		var existing QRCode
		err = s.db.Where("unique_code = ?", code).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		payload := ComposePayload(code, spaceID, ownerID)
		image, err := RenderImage(payload)
		if err != nil {
			return nil, err
		}

		record := QRCode{
			ID:         uuid.New(),
			UserID:     ownerID,
			SpaceID:    spaceID,
			UniqueCode: code,
			QRData:     payload,
			QRImage:    image,
		}

		if err := s.db.Create(&record).Error; err != nil {
			return nil, fmt.Errorf("failed to store QR code: %w", err)
		}
		return &record, nil
	}

	return nil, errors.New("failed to generate a unique QR code")
}

// Resolve looks up a scanned code and the space it is bound to. A missing
// code and a missing space are distinct failures; both map to 404. Store
// failures pass through unconverted.
func (s *QRCodeService) Resolve(code string) (*spaces.ParkingSpace, *QRCode, error) {
	var record QRCode
	if err := s.db.Where("unique_code = ?", code).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCodeNotFound
		}
		return nil, nil, fmt.Errorf("failed to look up QR code: %w", err)
	}

	space, err := s.spaces.FindByID(record.SpaceID)
	if err != nil {
		if errors.Is(err, spaces.ErrSpaceNotFound) {
			return nil, nil, ErrSpaceNotFound
		}
		return nil, nil, err
	}

	return space, &record, nil
}
