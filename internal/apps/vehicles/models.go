package vehicles

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a user-owned vehicle record. Plates are not unique; the same car
// may legitimately be registered by multiple household accounts.
type Vehicle struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	LicensePlate string    `gorm:"size:20;not null" json:"license_plate"`
	Make         string    `gorm:"size:100;not null" json:"make"`
	Model        string    `gorm:"size:100;not null" json:"model"`
	Color        string    `gorm:"size:50;not null" json:"color"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

type CreateVehicleRequest struct {
	LicensePlate string `json:"license_plate"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Color        string `json:"color"`
}
