package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsFox/app/models"
	"github.com/ManuelReschke/NewsFox/internal/pkg/cache"
)

const (
	siteSettingsCacheKey = "newsfox:site_settings"
	siteSettingsCacheTTL = 10 * time.Minute
)

// settingRepository implements the SettingRepository interface
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository instance
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// Get retrieves the site settings row, served from the cache when possible
func (r *settingRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	if cache.IsEnabled() {
		raw, err := cache.Get(siteSettingsCacheKey)
		switch {
		case err == nil:
			var cached models.SiteSettings
			decodeErr := cached.FromJSON([]byte(raw))
			if decodeErr == nil {
				return &cached, nil
			}
			log.Warnf("[SettingRepository] Dropping unreadable cached settings: %v", decodeErr)
		case !cache.IsMiss(err):
			log.Warnf("[SettingRepository] Failed to read settings from cache: %v", err)
		}
	}

	var settings models.SiteSettings
	// the oldest row wins if more than one was ever created
	if err := r.db.WithContext(ctx).Order("id ASC").First(&settings).Error; err != nil {
		return nil, translateError(err)
	}

	if cache.IsEnabled() {
		data, err := settings.ToJSON()
		if err == nil {
			err = cache.Set(siteSettingsCacheKey, data, siteSettingsCacheTTL)
		}
		if err != nil {
			log.Warnf("[SettingRepository] Failed to cache settings: %v", err)
		}
	}
	return &settings, nil
}

// Save writes settings into the singleton row, creating it on first use
func (r *settingRepository) Save(ctx context.Context, settings *models.SiteSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.SiteSettings
		err := tx.Order("id ASC").First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			settings.ID = 0
			return tx.Create(settings).Error
		case err != nil:
			return err
		}

		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
		return tx.Save(settings).Error
	})
	if err != nil {
		return translateError(err)
	}

	if cache.IsEnabled() {
		if err := cache.Delete(siteSettingsCacheKey); err != nil {
			log.Warnf("[SettingRepository] Failed to invalidate settings cache: %v", err)
		}
	}
	return nil
}
