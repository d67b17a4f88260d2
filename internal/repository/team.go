package repository

import (
	"context"

	"lido-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams ordered by name
func (r *TeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).Order("name ASC").Find(&teams).Error
	return teams, err
}

// GetByIDs retrieves the teams with the given IDs ordered by name
func (r *TeamRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	if len(ids) == 0 {
		return teams, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&teams).Error
	return teams, err
}

// GetByCaptain retrieves the teams captained by email
func (r *TeamRepository) GetByCaptain(ctx context.Context, email string) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).
		Where("lower(captain_email) = ?", models.NormalizeEmail(email)).
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

// CountByCaptain counts the teams captained by email
func (r *TeamRepository) CountByCaptain(ctx context.Context, email string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Team{}).
		Where("lower(captain_email) = ?", models.NormalizeEmail(email)).
		Count(&count).Error
	return count, err
}

// UpdateName renames a team
func (r *TeamRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	result := r.db.WithContext(ctx).Model(&models.Team{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetCaptain sets or clears (nil) the captain of a team
func (r *TeamRepository) SetCaptain(ctx context.Context, id uuid.UUID, email *string) error {
	var value interface{}
	if email != nil {
		value = models.NormalizeEmail(*email)
	}
	result := r.db.WithContext(ctx).Model(&models.Team{}).Where("id = ?", id).Update("captain_email", value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearCaptainByEmail removes email as captain from every team it captains
func (r *TeamRepository) ClearCaptainByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Model(&models.Team{}).
		Where("lower(captain_email) = ?", models.NormalizeEmail(email)).
		Update("captain_email", nil).Error
}
