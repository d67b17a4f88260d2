package repository

import (
	"context"

	"lido-club-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllowedUserRepository handles database operations for the sign-in whitelist
type AllowedUserRepository struct {
	db *gorm.DB
}

// NewAllowedUserRepository creates a new allowed user repository
func NewAllowedUserRepository(db *gorm.DB) *AllowedUserRepository {
	return &AllowedUserRepository{db: db}
}

// Upsert inserts the user or updates name, role and admin flag of an existing one
func (r *AllowedUserRepository) Upsert(ctx context.Context, user *models.AllowedUser) error {
	user.Email = models.NormalizeEmail(user.Email)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "role", "is_admin", "updated_at"}),
	}).Create(user).Error
}

// GetByEmail retrieves a user by email
func (r *AllowedUserRepository) GetByEmail(ctx context.Context, email string) (*models.AllowedUser, error) {
	var user models.AllowedUser
	err := r.db.WithContext(ctx).First(&user, "email = ?", models.NormalizeEmail(email)).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmails retrieves the users with the given emails
func (r *AllowedUserRepository) GetByEmails(ctx context.Context, emails []string) ([]models.AllowedUser, error) {
	var users []models.AllowedUser
	if len(emails) == 0 {
		return users, nil
	}
	normalized := make([]string, 0, len(emails))
	for _, e := range emails {
		normalized = append(normalized, models.NormalizeEmail(e))
	}
	err := r.db.WithContext(ctx).Where("email IN ?", normalized).Find(&users).Error
	return users, err
}

// GetAll retrieves every allowed user
func (r *AllowedUserRepository) GetAll(ctx context.Context) ([]models.AllowedUser, error) {
	var users []models.AllowedUser
	err := r.db.WithContext(ctx).Find(&users).Error
	return users, err
}

// Exists reports whether email is on the whitelist
func (r *AllowedUserRepository) Exists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AllowedUser{}).
		Where("email = ?", models.NormalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

// UpdateName changes the display name of a user
func (r *AllowedUserRepository) UpdateName(ctx context.Context, email string, name *string) error {
	return r.updateColumns(ctx, email, map[string]interface{}{"name": name})
}

// UpdateRole writes the cached role label
func (r *AllowedUserRepository) UpdateRole(ctx context.Context, email string, role models.RoleLabel) error {
	return r.updateColumns(ctx, email, map[string]interface{}{"role": role})
}

// GrantAdmin sets the admin label and flag
func (r *AllowedUserRepository) GrantAdmin(ctx context.Context, email string) error {
	return r.updateColumns(ctx, email, map[string]interface{}{"role": models.RoleAdmin, "is_admin": true})
}

// Delete removes a user from the whitelist
func (r *AllowedUserRepository) Delete(ctx context.Context, email string) error {
	result := r.db.WithContext(ctx).Where("email = ?", models.NormalizeEmail(email)).Delete(&models.AllowedUser{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AllowedUserRepository) updateColumns(ctx context.Context, email string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.AllowedUser{}).
		Where("email = ?", models.NormalizeEmail(email)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
