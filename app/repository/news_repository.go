package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ManuelReschke/NewsFox/app/models"
)

// newsRepository implements the NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create creates a new news article in the database. An empty slug is derived from
// the title; a slug that is already taken fails with ErrDuplicate.
func (r *newsRepository) Create(ctx context.Context, news *models.News) error {
	if news.MainCategoryID == 0 {
		return ErrMissingMainCategory
	}
	if err := news.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkNewsReferences(tx, news); err != nil {
			return err
		}

		exists, err := slugTaken(tx, &models.News{}, newsSlug(news), 0)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicate
		}

		if err := tx.Omit(clause.Associations).Create(news).Error; err != nil {
			return err
		}
		if len(news.Tags) > 0 {
			return tx.Model(news).Association("Tags").Replace(news.Tags)
		}
		return nil
	})
	return translateError(err)
}

// Update saves an existing news article. Tags are managed through SetTags.
func (r *newsRepository) Update(ctx context.Context, news *models.News) error {
	if news.MainCategoryID == 0 {
		return ErrMissingMainCategory
	}
	if err := news.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkNewsReferences(tx, news); err != nil {
			return err
		}

		exists, err := slugTaken(tx, &models.News{}, newsSlug(news), news.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicate
		}

		return tx.Omit(clause.Associations).Save(news).Error
	})
	return translateError(err)
}

// GetByID retrieves a news article by its ID
func (r *newsRepository) GetByID(ctx context.Context, id uint) (*models.News, error) {
	var news models.News
	err := r.preloaded(ctx).First(&news, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &news, nil
}

// GetBySlug retrieves a news article by its slug
func (r *newsRepository) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	var news models.News
	err := r.preloaded(ctx).Where("slug = ?", slug).First(&news).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &news, nil
}

// List retrieves news articles newest first
func (r *newsRepository) List(ctx context.Context, filter NewsFilter) ([]models.News, error) {
	var news []models.News
	query := applyNewsFilter(r.preloaded(ctx), filter).Order("news.created_at DESC").Order("news.id DESC")
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	err := query.Find(&news).Error
	return news, translateError(err)
}

// Count returns the number of news articles matching the filter, ignoring offset and limit
func (r *newsRepository) Count(ctx context.Context, filter NewsFilter) (int64, error) {
	var count int64
	err := applyNewsFilter(r.db.WithContext(ctx).Model(&models.News{}), filter).Count(&count).Error
	return count, translateError(err)
}

// SetTags replaces the tags of a news article
func (r *newsRepository) SetTags(ctx context.Context, newsID uint, tags []models.Tag) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var news models.News
		if err := tx.Select("id").First(&news, newsID).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return tx.Model(&news).Association("Tags").Clear()
		}
		return tx.Model(&news).Association("Tags").Replace(tags)
	})
	return translateError(err)
}

// Delete removes a news article, its tag links are removed by the foreign key cascade
func (r *newsRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.News{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SlugExists checks if a slug already exists
func (r *newsRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	exists, err := slugTaken(r.db.WithContext(ctx), &models.News{}, slug, 0)
	return exists, translateError(err)
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *newsRepository) SlugExistsExceptID(ctx context.Context, slug string, id uint) (bool, error) {
	exists, err := slugTaken(r.db.WithContext(ctx), &models.News{}, slug, id)
	return exists, translateError(err)
}

func (r *newsRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("MainCategory").Preload("NewsRoom").Preload("Tags")
}

func applyNewsFilter(query *gorm.DB, filter NewsFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("news.status = ?", filter.Status)
	}
	if filter.MainCategoryID != 0 {
		query = query.Where("news.main_category_id = ?", filter.MainCategoryID)
	}
	if filter.NewsRoomID != 0 {
		query = query.Where("news.news_room_id = ?", filter.NewsRoomID)
	}
	if filter.TopNews != "" {
		query = query.Where("news.top_news = ?", filter.TopNews)
	}
	if filter.IsHome != nil {
		query = query.Where("news.is_home = ?", *filter.IsHome)
	}
	if filter.TagSlug != "" {
		tagged := query.Session(&gorm.Session{NewDB: true}).
			Table("news_tags").
			Select("news_tags.news_id").
			Joins("JOIN tags ON tags.id = news_tags.tag_id").
			Where("tags.slug = ?", filter.TagSlug)
		query = query.Where("news.id IN (?)", tagged)
	}
	return query
}

// checkNewsReferences makes sure the main category and the optional news room exist
func checkNewsReferences(tx *gorm.DB, news *models.News) error {
	var count int64
	if err := tx.Model(&models.MainCategory{}).Where("id = ?", news.MainCategoryID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrMissingMainCategory
	}

	if news.NewsRoomID != nil {
		if err := tx.Model(&models.NewsRoom{}).Where("id = ?", *news.NewsRoomID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// newsSlug returns the slug the model hook is going to store
func newsSlug(news *models.News) string {
	if news.Slug != "" {
		return news.Slug
	}
	return models.MakeSlug(news.Title, models.ContentSlugMaxLength)
}

// slugTaken checks the slug column of model's table, ignoring the row exceptID
func slugTaken(db *gorm.DB, model interface{}, slug string, exceptID uint) (bool, error) {
	if slug == "" {
		return false, nil
	}
	var count int64
	err := db.Model(model).Where("slug = ? AND id <> ?", slug, exceptID).Count(&count).Error
	return count > 0, err
}
