package repository

import (
	"context"

	"lido-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamPlayerRepository handles database operations for team memberships
type TeamPlayerRepository struct {
	db *gorm.DB
}

// NewTeamPlayerRepository creates a new team player repository
func NewTeamPlayerRepository(db *gorm.DB) *TeamPlayerRepository {
	return &TeamPlayerRepository{db: db}
}

// Add adds email to the team; an existing membership is left untouched
func (r *TeamPlayerRepository) Add(ctx context.Context, teamID uuid.UUID, email string) error {
	return r.AddMany(ctx, []models.TeamPlayer{{TeamID: teamID, Email: email}})
}

// AddMany inserts memberships, ignoring duplicates
func (r *TeamPlayerRepository) AddMany(ctx context.Context, rows []models.TeamPlayer) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].Email = models.NormalizeEmail(rows[i].Email)
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// Remove removes email from the team
func (r *TeamPlayerRepository) Remove(ctx context.Context, teamID uuid.UUID, email string) error {
	result := r.db.WithContext(ctx).
		Where("team_id = ? AND email = ?", teamID, models.NormalizeEmail(email)).
		Delete(&models.TeamPlayer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RemoveByEmail removes email from every team
func (r *TeamPlayerRepository) RemoveByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", models.NormalizeEmail(email)).
		Delete(&models.TeamPlayer{}).Error
}

// Exists reports whether email plays on the team
func (r *TeamPlayerRepository) Exists(ctx context.Context, teamID uuid.UUID, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TeamPlayer{}).
		Where("team_id = ? AND email = ?", teamID, models.NormalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

// ListByTeam returns the player pool of a team in insertion order
func (r *TeamPlayerRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.TeamPlayer, error) {
	var rows []models.TeamPlayer
	err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Order("created_at ASC, email ASC").Find(&rows).Error
	return rows, err
}

// ListByEmail returns the memberships of one player
func (r *TeamPlayerRepository) ListByEmail(ctx context.Context, email string) ([]models.TeamPlayer, error) {
	var rows []models.TeamPlayer
	err := r.db.WithContext(ctx).Where("email = ?", models.NormalizeEmail(email)).Find(&rows).Error
	return rows, err
}

// ListAll returns every membership
func (r *TeamPlayerRepository) ListAll(ctx context.Context) ([]models.TeamPlayer, error) {
	var rows []models.TeamPlayer
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error
	return rows, err
}
