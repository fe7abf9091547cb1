package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsFox/app/models"
	"github.com/ManuelReschke/NewsFox/internal/pkg/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(database.DriverSQLite, filepath.Join(t.TempDir(), "newsfox_test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func createCategory(t *testing.T, repos *Repositories, title string) *models.MainCategory {
	t.Helper()

	category := &models.MainCategory{Title: title}
	require.NoError(t, repos.MainCategory.Create(context.Background(), category))
	return category
}

func newNews(categoryID uint, title string) *models.News {
	return &models.News{
		Title:          title,
		MainCategoryID: categoryID,
		Description:    "<p>" + title + "</p>",
		ContentImage:   "content_images/" + title + ".jpg",
	}
}
