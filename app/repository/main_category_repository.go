package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsFox/app/models"
)

// mainCategoryRepository implements the MainCategoryRepository interface
type mainCategoryRepository struct {
	db *gorm.DB
}

// NewMainCategoryRepository creates a new category repository instance
func NewMainCategoryRepository(db *gorm.DB) MainCategoryRepository {
	return &mainCategoryRepository{db: db}
}

// Create validates and inserts a category. The slug is generated by the model hook.
func (r *mainCategoryRepository) Create(ctx context.Context, category *models.MainCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}

	exists, err := r.TitleExists(ctx, category.Title, 0)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}

	return translateError(r.db.WithContext(ctx).Create(category).Error)
}

// Update validates and saves a category, re-checking its slug within its scope
func (r *mainCategoryRepository) Update(ctx context.Context, category *models.MainCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}

	exists, err := r.TitleExists(ctx, category.Title, category.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}

	return translateError(r.db.WithContext(ctx).Save(category).Error)
}

// GetByID retrieves a category by its ID
func (r *mainCategoryRepository) GetByID(ctx context.Context, id uint) (*models.MainCategory, error) {
	var category models.MainCategory
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

// GetBySlug retrieves the newest category carrying slug
func (r *mainCategoryRepository) GetBySlug(ctx context.Context, slug, status string) (*models.MainCategory, error) {
	var category models.MainCategory
	query := r.db.WithContext(ctx).Where("slug = ?", slug)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Order("id DESC").First(&category).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

// List retrieves categories newest first, optionally restricted to one status
func (r *mainCategoryRepository) List(ctx context.Context, status string) ([]models.MainCategory, error) {
	var categories []models.MainCategory
	query := r.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Order("id DESC").Find(&categories).Error
	return categories, translateError(err)
}

// ListFeatured retrieves the published categories flagged for the main menu in menu order
func (r *mainCategoryRepository) ListFeatured(ctx context.Context) ([]models.MainCategory, error) {
	var categories []models.MainCategory
	err := r.db.WithContext(ctx).
		Where("featured = ? AND status = ?", true, models.STATUS_PUBLISHED).
		Order("sequence ASC").Order("created_at DESC").
		Find(&categories).Error
	return categories, translateError(err)
}

// Delete removes a category. Its news articles are removed by the foreign key cascade.
func (r *mainCategoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.MainCategory{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TitleExists checks if a title is used by a category other than exceptID
func (r *mainCategoryRepository) TitleExists(ctx context.Context, title string, exceptID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MainCategory{}).
		Where("title = ? AND id <> ?", title, exceptID).
		Count(&count).Error
	return count > 0, translateError(err)
}
