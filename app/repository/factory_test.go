package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactoryGettersShareRepositories(t *testing.T) {
	f := NewFactory(newTestDB(t))
	repos := f.GetRepositories()

	assert.Same(t, repos, f.GetRepositories())
	assert.Equal(t, repos.News, f.GetNewsRepository())
	assert.Equal(t, repos.Page, f.GetPageRepository())
	assert.Equal(t, repos.MainCategory, f.GetMainCategoryRepository())
	assert.Equal(t, repos.Setting, f.GetSettingRepository())
	assert.Equal(t, repos.NewsRoom, f.GetNewsRoomRepository())
	assert.Equal(t, repos.Tag, f.GetTagRepository())
	assert.Equal(t, repos.User, f.GetUserRepository())
	assert.Equal(t, repos.UserProfile, f.GetUserProfileRepository())
}
