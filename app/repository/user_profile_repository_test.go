package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/NewsFox/app/models"
)

func TestUserProfileSlugFromUsername(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))

	user, err := models.CreateUser("Jürgen Müller", "jm@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, repos.User.Create(ctx, user))

	profile := &models.UserProfile{UserID: user.ID, Avatar: "avatar/jm.png"}
	require.NoError(t, repos.UserProfile.Save(ctx, profile))
	assert.Equal(t, "jurgen-muller", profile.Slug)

	profile.Avatar = "avatar/jm-2.png"
	require.NoError(t, repos.UserProfile.Save(ctx, profile))

	stored, err := repos.UserProfile.GetBySlug(ctx, "jurgen-muller")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.UserID)
	assert.Equal(t, "avatar/jm-2.png", stored.Avatar)
	assert.Equal(t, "jm@example.com", stored.String())
}

func TestDeletingUserCascadesToProfile(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))

	user, err := models.CreateUser("editor", "", "secret123")
	require.NoError(t, err)
	require.NoError(t, repos.User.Create(ctx, user))
	require.NoError(t, repos.UserProfile.Save(ctx, &models.UserProfile{UserID: user.ID}))

	require.NoError(t, repos.User.Delete(ctx, user.ID))

	_, err = repos.UserProfile.GetByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserProfileUnknownUser(t *testing.T) {
	err := NewRepositories(newTestDB(t)).UserProfile.Save(context.Background(), &models.UserProfile{UserID: 42, Slug: "ghost"})
	assert.Error(t, err)
}

func TestUsernameUnique(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newTestDB(t))

	first, err := models.CreateUser("editor", "", "secret123")
	require.NoError(t, err)
	require.NoError(t, repos.User.Create(ctx, first))

	second, err := models.CreateUser("editor", "", "secret456")
	require.NoError(t, err)
	assert.ErrorIs(t, repos.User.Create(ctx, second), ErrDuplicate)

	found, err := repos.User.GetByUsername(ctx, "editor")
	require.NoError(t, err)
	assert.True(t, found.CheckPassword("secret123"))
}
