package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/NewsFox/app/repository"
	"github.com/ManuelReschke/NewsFox/internal/pkg/usercontext"
)

// EditorAuth authenticates write requests. It accepts either the shared API key
// (X-API-Key or "Authorization: Bearer") or HTTP basic auth with a user's password.
// An empty apiKey disables key authentication.
func EditorAuth(users repository.UserRepository, apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key := extractAPIKeyFromHeader(c); key != "" {
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				return unauthorized(c, "Invalid API key")
			}
			usercontext.Set(c, usercontext.UserContext{IsLoggedIn: true, ViaAPIKey: true})
			return c.Next()
		}

		username, password, ok := extractBasicAuth(c)
		if !ok {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="newsfox"`)
			return unauthorized(c, "Missing credentials")
		}

		user, err := users.GetByUsername(c.UserContext(), username)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				log.Errorf("[Auth] user lookup failed: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Authentication failed"})
			}
			return unauthorized(c, "Invalid credentials")
		}
		if !user.CheckPassword(password) {
			return unauthorized(c, "Invalid credentials")
		}

		usercontext.Set(c, usercontext.UserContext{UserID: user.ID, Username: user.Username, IsLoggedIn: true})
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": message})
}

func extractAPIKeyFromHeader(c *fiber.Ctx) string {
	apiKey := strings.TrimSpace(c.Get("X-API-Key"))
	if apiKey != "" {
		return apiKey
	}
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

func extractBasicAuth(c *fiber.Ctx) (string, string, bool) {
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) <= 6 || !strings.EqualFold(auth[:6], "basic ") {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(auth[6:])
	if err != nil {
		return "", "", false
	}
	username, password, ok := strings.Cut(string(raw), ":")
	if !ok || username == "" {
		return "", "", false
	}
	return username, password, true
}
