package repository

import (
	"context"
	"time"

	"lido-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// CreateWithRoster inserts the match and its preselected roster in one transaction
func (r *MatchRepository) CreateWithRoster(ctx context.Context, match *models.Match, emails []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(match).Error; err != nil {
			return err
		}
		if len(emails) == 0 {
			return nil
		}
		rows := make([]models.MatchRoster, 0, len(emails))
		for _, e := range emails {
			rows = append(rows, models.MatchRoster{MatchID: match.ID, Email: models.NormalizeEmail(e)})
		}
		return tx.Create(&rows).Error
	})
}

// GetByID retrieves a match by ID
func (r *MatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.WithContext(ctx).First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// Update writes the given columns of a match in one statement
func (r *MatchRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Match{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a match; roster and responses cascade
func (r *MatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Match{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByTeams returns the matches of the given teams ordered by start time, optionally from a point in time
func (r *MatchRepository) ListByTeams(ctx context.Context, teamIDs []uuid.UUID, from *time.Time) ([]models.Match, error) {
	var matches []models.Match
	if len(teamIDs) == 0 {
		return matches, nil
	}
	query := r.db.WithContext(ctx).Where("team_id IN ?", teamIDs)
	if from != nil {
		query = query.Where("start_at >= ?", *from)
	}
	err := query.Order("start_at ASC").Find(&matches).Error
	return matches, err
}

// ListAll returns every match ordered by start time
func (r *MatchRepository) ListAll(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.WithContext(ctx).Order("start_at ASC").Find(&matches).Error
	return matches, err
}
