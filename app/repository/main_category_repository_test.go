package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/NewsFox/app/models"
)

func TestMainCategorySlugScopedByMonthAndStatus(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))

	world := &models.MainCategory{Title: "World"}
	require.NoError(t, repos.MainCategory.Create(ctx, world))
	assert.Equal(t, "world", world.Slug)
	assert.Equal(t, models.STATUS_PUBLISHED, world.Status)

	tests := []struct {
		name     string
		category *models.MainCategory
		want     string
	}{
		{
			name:     "same month and status is suffixed",
			category: &models.MainCategory{Title: "World News", Slug: "world"},
			want:     "world-2",
		},
		{
			name:     "next collision counts up",
			category: &models.MainCategory{Title: "World Affairs", Slug: "World"},
			want:     "world-3",
		},
		{
			name:     "other status shares the slug",
			category: &models.MainCategory{Title: "World (draft)", Slug: "world", Status: models.STATUS_DRAFT},
			want:     "world",
		},
		{
			name:     "other month shares the slug",
			category: &models.MainCategory{Title: "World Archive", Slug: "world", CreatedAt: time.Now().AddDate(0, -6, 0)},
			want:     "world",
		},
		{
			name:     "same month of another year is suffixed",
			category: &models.MainCategory{Title: "World Yearbook", Slug: "world", CreatedAt: time.Now().AddDate(-1, 0, 0)},
			want:     "world-4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, repos.MainCategory.Create(ctx, tt.category))
			assert.Equal(t, tt.want, tt.category.Slug)
		})
	}
}

func TestMainCategoryUpdateKeepsOwnSlug(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))

	category := createCategory(t, repos, "Business")
	category.Description = "<p>Markets and companies</p>"
	category.Featured = true
	require.NoError(t, repos.MainCategory.Update(ctx, category))
	assert.Equal(t, "business", category.Slug)

	stored, err := repos.MainCategory.GetByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "business", stored.Slug)
	assert.True(t, stored.Featured)
	assert.Equal(t, "/category/business/", stored.AbsoluteURL())
}

func TestMainCategoryLongTitleIsCropped(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))

	title := strings.Repeat("abcdefghij", 6)
	first := &models.MainCategory{Title: title}
	require.NoError(t, repos.MainCategory.Create(ctx, first))
	assert.Equal(t, title[:models.CategorySlugMaxLength], first.Slug)

	second := &models.MainCategory{Title: title + " again"}
	require.NoError(t, repos.MainCategory.Create(ctx, second))
	assert.Len(t, second.Slug, models.CategorySlugMaxLength)
	assert.True(t, strings.HasSuffix(second.Slug, "-2"), second.Slug)
}

func TestMainCategoryTitleUnique(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))
	createCategory(t, repos, "Health")

	err := repos.MainCategory.Create(ctx, &models.MainCategory{Title: "Health"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMainCategoryRejectsUnsluggableTitle(t *testing.T) {
	err := NewRepositories(newTestDB(t)).MainCategory.Create(context.Background(), &models.MainCategory{Title: "!!!"})
	assert.ErrorIs(t, err, models.ErrEmptySlug)
}

func TestMainCategoryListings(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))

	menu := []*models.MainCategory{
		{Title: "Second", Featured: true, Sequence: 2},
		{Title: "First", Featured: true, Sequence: 1},
		{Title: "Hidden", Featured: true, Sequence: 0, Status: models.STATUS_DRAFT},
		{Title: "Plain"},
	}
	for _, c := range menu {
		require.NoError(t, repos.MainCategory.Create(ctx, c))
	}

	featured, err := repos.MainCategory.ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, "First", featured[0].Title)
	assert.Equal(t, "Second", featured[1].Title)

	published, err := repos.MainCategory.List(ctx, models.STATUS_PUBLISHED)
	require.NoError(t, err)
	assert.Len(t, published, 3)

	all, err := repos.MainCategory.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "Plain", all[0].Title)

	hidden, err := repos.MainCategory.GetBySlug(ctx, "hidden", "")
	require.NoError(t, err)
	assert.Equal(t, models.STATUS_DRAFT, hidden.Status)

	_, err = repos.MainCategory.GetBySlug(ctx, "hidden", models.STATUS_PUBLISHED)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewsRoomsOrderedBySequence(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))

	for _, r := range []struct{ title, seq string }{{"Gamma", "3"}, {"Alpha", "1"}, {"Beta", "2"}} {
		seq := r.seq
		require.NoError(t, repos.NewsRoom.Create(ctx, &models.NewsRoom{Title: r.title, Sequence: &seq}))
	}

	rooms, err := repos.NewsRoom.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, []string{rooms[0].Title, rooms[1].Title, rooms[2].Title})
	assert.Equal(t, models.STATUS_PUBLISHED, rooms[0].Status)

	tooLong := "1000"
	err = repos.NewsRoom.Create(ctx, &models.NewsRoom{Title: "Delta", Sequence: &tooLong})
	assert.Error(t, err)

	err = repos.NewsRoom.Create(ctx, &models.NewsRoom{Title: "Alpha"})
	assert.ErrorIs(t, err, ErrDuplicate)
}
