package messages

import (
	"time"

	"github.com/google/uuid"
)

// Message is a stored note between two users about a space. There is no
// read/unread state and no delivery channel; listing is the only read path.
type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sender_id"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index" json:"recipient_id"`
	SpaceID     uuid.UUID `gorm:"type:uuid;not null;index" json:"space_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

type SendMessageRequest struct {
	Content     string `json:"content"`
	RecipientID string `json:"recipient_id"`
	SpaceID     string `json:"space_id"`
}
