package qrcodes

import (
	"time"

	"github.com/google/uuid"
	"github.com/parkityourself/piys-backend/internal/apps/spaces"
)

// QRCode binds a unique scannable code to a parking space and its owner.
// Records are immutable once issued; scanning is a pure read.
type QRCode struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SpaceID    uuid.UUID `gorm:"type:uuid;not null;index" json:"space_id"`
	UniqueCode string    `gorm:"size:16;not null;uniqueIndex" json:"unique_code"`
	QRData     string    `gorm:"type:text;not null" json:"qr_data"`
	QRImage    string    `gorm:"type:text;not null" json:"qr_image"`
	CreatedAt  time.Time `json:"created_at"`
}

func (QRCode) TableName() string {
	return "qr_codes"
}

type CreateQRCodeRequest struct {
	SpaceID string `json:"space_id"`
}

type ScanResponse struct {
	Space  *spaces.ParkingSpace `json:"space"`
	QRCode *QRCode              `json:"qr_code"`
}
