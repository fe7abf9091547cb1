package controllers

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/NewsFox/app/models"
	"github.com/ManuelReschke/NewsFox/app/repository"
	"github.com/ManuelReschke/NewsFox/internal/pkg/upload"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: (&models.News{}).Validate(), want: fiber.StatusUnprocessableEntity},
		{name: "missing category", err: repository.ErrMissingMainCategory, want: fiber.StatusUnprocessableEntity},
		{name: "empty slug", err: models.ErrEmptySlug, want: fiber.StatusUnprocessableEntity},
		{name: "not found", err: fmt.Errorf("wrapped: %w", repository.ErrNotFound), want: fiber.StatusNotFound},
		{name: "duplicate", err: repository.ErrDuplicate, want: fiber.StatusConflict},
		{name: "bad request", err: fiber.NewError(fiber.StatusBadRequest, "Invalid id"), want: fiber.StatusBadRequest},
		{name: "too large", err: upload.ErrTooLarge, want: fiber.StatusRequestEntityTooLarge},
		{name: "not an image", err: upload.ErrUnsupportedType, want: fiber.StatusUnsupportedMediaType},
		{name: "unexpected", err: errors.New("disk on fire"), want: fiber.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return handleError(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "cloudflare", headers: map[string]string{"CF-Connecting-IP": "203.0.113.9", "X-Forwarded-For": "10.0.0.1"}, want: "203.0.113.9"},
		{name: "forwarded list", headers: map[string]string{"X-Forwarded-For": "198.51.100.7, 10.0.0.1"}, want: "198.51.100.7"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "2001:db8::1"}, want: "2001:db8::1"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			app := fiber.New()
			var got string
			app.Get("/", func(c *fiber.Ctx) error {
				got = ClientIP(c)
				return nil
			})

			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			_, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewsRequestApply(t *testing.T) {
	roomID := uint(3)
	news := &models.News{Title: "Old", Slug: "old", NewsRoomID: &roomID, MainCategoryID: 1}

	zero := uint(0)
	title := "New"
	description := `<p onclick="x()">Hi</p>`
	req := newsRequest{Title: &title, NewsRoomID: &zero, Description: &description}
	req.apply(news)

	assert.Equal(t, "New", news.Title)
	assert.Equal(t, "old", news.Slug)
	assert.Nil(t, news.NewsRoomID)
	assert.Equal(t, uint(1), news.MainCategoryID)
	assert.Equal(t, "<p>Hi</p>", news.Description)
}
