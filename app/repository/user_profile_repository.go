package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ManuelReschke/NewsFox/app/models"
)

// userProfileRepository implements the UserProfileRepository interface
type userProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository creates a new user profile repository instance
func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db: db}
}

// Save creates or updates the profile of profile.UserID
func (r *userProfileRepository) Save(ctx context.Context, profile *models.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserProfile{}).Where("user_id = ?", profile.UserID).Count(&count).Error
	if err != nil {
		return translateError(err)
	}

	tx := r.db.WithContext(ctx).Omit(clause.Associations)
	if count == 0 {
		return translateError(tx.Create(profile).Error)
	}
	return translateError(tx.Save(profile).Error)
}

// GetByUserID retrieves the profile of a user
func (r *userProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.WithContext(ctx).Preload("User").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// GetBySlug retrieves a profile by its slug
func (r *userProfileRepository) GetBySlug(ctx context.Context, slug string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.WithContext(ctx).Preload("User").Where("slug = ?", slug).First(&profile).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// Delete removes the profile of a user
func (r *userProfileRepository) Delete(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.UserProfile{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
