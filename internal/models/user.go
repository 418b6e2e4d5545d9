package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential-store record. Email doubles as the token subject.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Phone     string    `gorm:"not null;size:50" json:"phone"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
