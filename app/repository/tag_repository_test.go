package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsFox/app/models"
)

func TestTagFindOrCreate(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))

	tags, err := repos.Tag.FindOrCreate(ctx, []string{" Go ", "", "Go", "go"})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Go", tags[0].Name)
	assert.Equal(t, "go", tags[0].Slug)
	assert.Equal(t, "go", tags[1].Name)
	assert.Equal(t, "go_1", tags[1].Slug)

	again, err := repos.Tag.FindOrCreate(ctx, []string{"go"})
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, tags[1].ID, again[0].ID)

	all, err := repos.Tag.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTagWithoutSluggableName(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))

	_, err := repos.Tag.FindOrCreate(ctx, []string{"politics", "!!!"})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrEmptySlug)
	assert.Contains(t, err.Error(), `tag "!!!"`)

	// the transaction rolls back the tags created before the failure
	all, err := repos.Tag.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "not found", in: gorm.ErrRecordNotFound, want: ErrNotFound},
		{name: "duplicate", in: gorm.ErrDuplicatedKey, want: ErrDuplicate},
		{name: "foreign key", in: gorm.ErrForeignKeyViolated, want: ErrNotFound},
		{name: "missing category", in: ErrMissingMainCategory, want: ErrMissingMainCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in)
		})
	}

	assert.NoError(t, translateError(nil))
	other := errors.New("boom")
	assert.Equal(t, other, translateError(other))
}
