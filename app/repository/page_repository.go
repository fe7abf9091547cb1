package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsFox/app/models"
)

// pageRepository implements the PageRepository interface
type pageRepository struct {
	db *gorm.DB
}

// NewPageRepository creates a new page repository instance
func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

// Create creates a new page in the database
func (r *pageRepository) Create(ctx context.Context, page *models.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := slugTaken(tx, &models.Page{}, pageSlug(page), 0)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicate
		}
		return tx.Create(page).Error
	})
	return translateError(err)
}

// Update updates an existing page in the database
func (r *pageRepository) Update(ctx context.Context, page *models.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := slugTaken(tx, &models.Page{}, pageSlug(page), page.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicate
		}
		return tx.Save(page).Error
	})
	return translateError(err)
}

// GetByID retrieves a page by its ID
func (r *pageRepository) GetByID(ctx context.Context, id uint) (*models.Page, error) {
	var page models.Page
	err := r.db.WithContext(ctx).First(&page, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &page, nil
}

// GetBySlug retrieves a page by its slug
func (r *pageRepository) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&page).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &page, nil
}

// List retrieves pages newest first, optionally restricted to one status
func (r *pageRepository) List(ctx context.Context, status string) ([]models.Page, error) {
	var pages []models.Page
	query := r.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Order("id DESC").Find(&pages).Error
	return pages, translateError(err)
}

// Delete deletes a page by its ID
func (r *pageRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Page{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SlugExists checks if a slug already exists
func (r *pageRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	exists, err := slugTaken(r.db.WithContext(ctx), &models.Page{}, slug, 0)
	return exists, translateError(err)
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *pageRepository) SlugExistsExceptID(ctx context.Context, slug string, id uint) (bool, error) {
	exists, err := slugTaken(r.db.WithContext(ctx), &models.Page{}, slug, id)
	return exists, translateError(err)
}

func pageSlug(page *models.Page) string {
	if page.Slug != "" {
		return page.Slug
	}
	return models.MakeSlug(page.Title, models.ContentSlugMaxLength)
}
