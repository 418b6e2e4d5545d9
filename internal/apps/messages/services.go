package messages

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const listLimit = 100

type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

func (s *MessageService) Create(senderID, recipientID, spaceID uuid.UUID, content string) (*Message, error) {
	message := Message{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: recipientID,
		SpaceID:     spaceID,
		Content:     content,
	}

	if err := s.db.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return &message, nil
}

// ListForUser returns messages the user sent or received.
func (s *MessageService) ListForUser(userID uuid.UUID) ([]Message, error) {
	var list []Message
	err := s.db.
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Limit(listLimit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return list, nil
}
