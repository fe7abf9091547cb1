package statistics

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
	CacheKeyContent = "statistics:content"
	CacheExpiration = 5 * time.Minute
)

// StatisticsData holds the content counters of the editor dashboard
type StatisticsData struct {
	NewsTotal     int64     `json:"news_total"`
	NewsPublished int64     `json:"news_published"`
	NewsDrafts    int64     `json:"news_drafts"`
	NewsToday     int64     `json:"news_today"`
	Categories    int64     `json:"categories"`
	NewsRooms     int64     `json:"news_rooms"`
	Pages         int64     `json:"pages"`
	Tags          int64     `json:"tags"`
	Users         int64     `json:"users"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// GetStatistics returns the cached counters, computing and caching them on a miss.
// Without a cache server the counters are computed on every call.
func GetStatistics(ctx context.Context, db *gorm.DB) (*StatisticsData, error) {
	var cached StatisticsData
	hit, err := cache.GetJSON(CacheKeyContent, &cached)
	if err != nil && !errors.Is(err, cache.ErrDisabled) {
		log.Warnf("[Statistics] Cache read failed: %v", err)
	}
	if hit {
		return &cached, nil
	}

	stats, err := Compute(ctx, db)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(CacheKeyContent, stats, CacheExpiration); err != nil && !errors.Is(err, cache.ErrDisabled) {
		log.Warnf("[Statistics] Cache write failed: %v", err)
	}
	return stats, nil
}

// Invalidate drops the cached counters, called after content changes
func Invalidate() {
	if err := cache.Delete(CacheKeyContent); err != nil && !errors.Is(err, cache.ErrDisabled) {
		log.Warnf("[Statistics] Cache invalidation failed: %v", err)
	}
}

// Compute counts the rows straight from the database
func Compute(ctx context.Context, db *gorm.DB) (*StatisticsData, error) {
	db = db.WithContext(ctx)
	now := time.Now()
	stats := &StatisticsData{GeneratedAt: now}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	counts := []struct {
		target *int64
		query  *gorm.DB
	}{
		{&stats.NewsTotal, db.Model(&models.News{})},
		{&stats.NewsPublished, db.Model(&models.News{}).Where("status = ?", models.STATUS_PUBLISHED)},
		{&stats.NewsDrafts, db.Model(&models.News{}).Where("status = ?", models.STATUS_DRAFT)},
		{&stats.NewsToday, db.Model(&models.News{}).Where("created_at >= ?", startOfDay)},
		{&stats.Categories, db.Model(&models.MainCategory{})},
		{&stats.NewsRooms, db.Model(&models.NewsRoom{})},
		{&stats.Pages, db.Model(&models.Page{})},
		{&stats.Tags, db.Model(&models.Tag{})},
		{&stats.Users, db.Model(&models.User{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.target).Error; err != nil {
			log.Errorf("[Statistics] Counting failed: %v", err)
			return nil, err
		}
	}
	return stats, nil
}
