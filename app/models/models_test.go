package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoices(t *testing.T) {
	assert.True(t, IsValidStatus(STATUS_DRAFT))
	assert.True(t, IsValidStatus(STATUS_PUBLISHED))
	assert.False(t, IsValidStatus("X"))

	for _, code := range []string{TOP_NEWS_SLIDER, TOP_NEWS_TOP6, TOP_NEWS_NONE} {
		assert.True(t, IsValidTopNews(code), code)
	}
	assert.False(t, IsValidTopNews(""))
	assert.Equal(t, "Top 6", TopNewsLabels[TOP_NEWS_TOP6])
}

func TestAbsoluteURLs(t *testing.T) {
	assert.Equal(t, "/category/world/", (&MainCategory{Slug: "world"}).AbsoluteURL())
	assert.Equal(t, "/news/cafe-deja-vu/", (&News{Slug: "cafe-deja-vu"}).AbsoluteURL())
	assert.Equal(t, "/page/about/", (&Page{Slug: "about"}).AbsoluteURL())
}

func TestNewsValidate(t *testing.T) {
	valid := News{
		Title:          "Election night",
		MainCategoryID: 1,
		Description:    "<p>Results</p>",
		ContentImage:   "content_images/a.jpg",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		edit  func(n *News)
		field string
	}{
		{name: "title required", edit: func(n *News) { n.Title = "" }, field: "Title"},
		{name: "description required", edit: func(n *News) { n.Description = "" }, field: "Description"},
		{name: "content image required", edit: func(n *News) { n.ContentImage = "" }, field: "ContentImage"},
		{name: "unknown top news", edit: func(n *News) { n.TopNews = "X" }, field: "TopNews"},
		{name: "unknown status", edit: func(n *News) { n.Status = "A" }, field: "Status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := valid
			tt.edit(&n)

			var validationErrors validator.ValidationErrors
			require.ErrorAs(t, n.Validate(), &validationErrors)
			assert.Equal(t, tt.field, validationErrors[0].Field())
		})
	}
}

func TestSiteSettingsSocialLinks(t *testing.T) {
	s := &SiteSettings{SiteTitle: "Daily Fox", Twitter: "https://twitter.com/dailyfox", YouTube: "https://youtube.com/@dailyfox"}
	require.NoError(t, s.Validate())
	assert.Equal(t, map[string]string{
		"twitter": "https://twitter.com/dailyfox",
		"youtube": "https://youtube.com/@dailyfox",
	}, s.SocialLinks())

	data, err := s.ToJSON()
	require.NoError(t, err)
	var decoded SiteSettings
	require.NoError(t, decoded.FromJSON(data))
	assert.Equal(t, s.YouTube, decoded.YouTube)

	assert.Error(t, (&SiteSettings{}).Validate())
}

func TestUserPassword(t *testing.T) {
	_, err := CreateUser("editor", "editor@example.com", "short")
	assert.Error(t, err)

	u, err := CreateUser("editor", "editor@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", u.Password)
	assert.True(t, u.CheckPassword("secret123"))
	assert.False(t, u.CheckPassword("secret124"))

	require.NoError(t, u.SetPassword("another-secret"))
	assert.True(t, CheckPasswordHash("another-secret", u.Password))

	_, err = CreateUser("editor", "not-an-email", "secret123")
	assert.Error(t, err)
}
