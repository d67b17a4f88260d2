package repository

import (
	"context"
	"time"

	"lido-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchResponseRepository handles database operations for availability responses
type MatchResponseRepository struct {
	db *gorm.DB
}

// NewMatchResponseRepository creates a new match response repository
func NewMatchResponseRepository(db *gorm.DB) *MatchResponseRepository {
	return &MatchResponseRepository{db: db}
}

// Upsert records the user's answer, replacing an earlier one
func (r *MatchResponseRepository) Upsert(ctx context.Context, response *models.MatchResponse) error {
	response.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(response).Error
}

// Get retrieves the answer of one user
func (r *MatchResponseRepository) Get(ctx context.Context, matchID, userID uuid.UUID) (*models.MatchResponse, error) {
	var response models.MatchResponse
	err := r.db.WithContext(ctx).First(&response, "match_id = ? AND user_id = ?", matchID, userID).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// ReadyEmails returns the lower-cased emails of users who answered ready
func (r *MatchResponseRepository) ReadyEmails(ctx context.Context, matchID uuid.UUID) ([]string, error) {
	var emails []string
	err := r.db.WithContext(ctx).
		Table("match_responses AS r").
		Select("lower(p.email)").
		Joins("JOIN profiles AS p ON p.id = r.user_id").
		Where("r.match_id = ? AND r.status = ?", matchID, models.ResponseReady).
		Scan(&emails).Error
	return emails, err
}
