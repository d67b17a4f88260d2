package repository

import (
	"context"

	"lido-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRosterRepository handles database operations for preselected rosters
type MatchRosterRepository struct {
	db *gorm.DB
}

// NewMatchRosterRepository creates a new match roster repository
func NewMatchRosterRepository(db *gorm.DB) *MatchRosterRepository {
	return &MatchRosterRepository{db: db}
}

// ListByMatch returns the roster of a match in insertion order
func (r *MatchRosterRepository) ListByMatch(ctx context.Context, matchID uuid.UUID) ([]models.MatchRoster, error) {
	var rows []models.MatchRoster
	err := r.db.WithContext(ctx).Where("match_id = ?", matchID).Order("created_at ASC, email ASC").Find(&rows).Error
	return rows, err
}

// DeleteByMatch removes every roster row of a match
func (r *MatchRosterRepository) DeleteByMatch(ctx context.Context, matchID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("match_id = ?", matchID).Delete(&models.MatchRoster{}).Error
}

// InsertMany bulk inserts roster rows for a match
func (r *MatchRosterRepository) InsertMany(ctx context.Context, matchID uuid.UUID, emails []string) error {
	if len(emails) == 0 {
		return nil
	}
	rows := make([]models.MatchRoster, 0, len(emails))
	for _, e := range emails {
		rows = append(rows, models.MatchRoster{MatchID: matchID, Email: models.NormalizeEmail(e)})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
