package repository

import (
	"context"

	"lido-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessageRepository handles database operations for team chat
type ChatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository creates a new chat message repository
func NewChatMessageRepository(db *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

// Create inserts a message and fills in its ID and timestamp
func (r *ChatMessageRepository) Create(ctx context.Context, message *models.ChatMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	message.SenderEmail = models.NormalizeEmail(message.SenderEmail)
	return r.db.WithContext(ctx).Create(message).Error
}

// ListRecent returns the last limit messages of a team, oldest first
func (r *ChatMessageRepository) ListRecent(ctx context.Context, teamID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
