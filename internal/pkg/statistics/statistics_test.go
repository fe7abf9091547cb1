package statistics

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/NewsFox/app/models"
	"github.com/ManuelReschke/NewsFox/internal/pkg/cache"
	"github.com/ManuelReschke/NewsFox/internal/pkg/database"
)

func TestGetStatisticsWithoutCache(t *testing.T) {
	cache.SetClient(nil)
	ctx := context.Background()

	db, err := database.Open(database.DriverSQLite, filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	category := &models.MainCategory{Title: "World"}
	require.NoError(t, db.Create(category).Error)
	for _, n := range []models.News{
		{Title: "One", MainCategoryID: category.ID, Description: "x", ContentImage: "content_images/1.jpg"},
		{Title: "Two", MainCategoryID: category.ID, Description: "x", ContentImage: "content_images/2.jpg", Status: models.STATUS_DRAFT},
	} {
		n := n
		require.NoError(t, db.Create(&n).Error)
	}
	require.NoError(t, db.Create(&models.Page{Title: "About", Description: "x"}).Error)

	stats, err := GetStatistics(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.NewsTotal)
	assert.Equal(t, int64(1), stats.NewsPublished)
	assert.Equal(t, int64(1), stats.NewsDrafts)
	assert.Equal(t, int64(2), stats.NewsToday)
	assert.Equal(t, int64(1), stats.Categories)
	assert.Equal(t, int64(1), stats.Pages)
	assert.Equal(t, int64(0), stats.Users)
	assert.False(t, stats.GeneratedAt.IsZero())

	// no cache means no error either
	Invalidate()
}
