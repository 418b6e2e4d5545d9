package spaces

import (
	"time"

	"github.com/google/uuid"
)

// ParkingSpace is a space listed for rent. Available defaults to true and is
// never toggled by the API; a future booking flow owns that transition.
type ParkingSpace struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Address    string    `gorm:"type:text;not null" json:"address"`
	HourlyRate float64   `gorm:"not null" json:"hourly_rate"`
	DailyRate  *float64  `json:"daily_rate,omitempty"`
	Available  bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ParkingSpace) TableName() string {
	return "parking_spaces"
}

type CreateSpaceRequest struct {
	Title      string   `json:"title"`
	Address    string   `json:"address"`
	HourlyRate float64  `json:"hourly_rate"`
	DailyRate  *float64 `json:"daily_rate,omitempty"`
}
