package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/NewsFox/app/models"
	"github.com/ManuelReschke/NewsFox/app/repository"
	"github.com/ManuelReschke/NewsFox/internal/pkg/storage"
	"github.com/ManuelReschke/NewsFox/internal/pkg/upload"
)

// errorResponse writes the JSON error body shared by all API handlers
func errorResponse(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": code, "message": message})
}

// handleError maps repository, validation and upload errors onto HTTP status codes
func handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		fields := make(map[string]string, len(validationErrors))
		for _, fe := range validationErrors {
			fields[fe.Field()] = fe.Tag()
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_failed",
			"message": "Invalid input",
			"fields":  fields,
		})
	case errors.Is(err, repository.ErrMissingMainCategory):
		return errorResponse(c, fiber.StatusUnprocessableEntity, "missing_main_category", err.Error())
	case errors.Is(err, models.ErrEmptySlug):
		return errorResponse(c, fiber.StatusUnprocessableEntity, "invalid_slug", err.Error())
	case errors.Is(err, repository.ErrNotFound):
		return errorResponse(c, fiber.StatusNotFound, "not_found", "Resource not found")
	case errors.Is(err, repository.ErrDuplicate):
		return errorResponse(c, fiber.StatusConflict, "duplicate", "Title or slug already in use")
	case errors.Is(err, storage.ErrUnknownKind):
		return errorResponse(c, fiber.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, upload.ErrTooLarge):
		return errorResponse(c, fiber.StatusRequestEntityTooLarge, "too_large", err.Error())
	case errors.Is(err, upload.ErrUnsupportedExtension), errors.Is(err, upload.ErrUnsupportedType),
		errors.Is(err, upload.ErrScriptableContent), errors.Is(err, upload.ErrCorruptImage):
		return errorResponse(c, fiber.StatusUnsupportedMediaType, "unsupported_media", err.Error())
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return errorResponse(c, fiberErr.Code, "bad_request", fiberErr.Message)
	}

	log.Errorf("[API] %s %s failed: %v", c.Method(), c.Path(), err)
	return errorResponse(c, fiber.StatusInternalServerError, "internal_server_error", "Something went wrong")
}

// paramID parses the :id route parameter
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}

// queryUint parses an optional numeric query parameter, 0 when missing
func queryUint(c *fiber.Ctx, key string) (uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+key)
	}
	return uint(v), nil
}

// queryStatus validates an optional status filter
func queryStatus(c *fiber.Ctx) (string, error) {
	status := strings.ToUpper(c.Query("status"))
	if status != "" && !models.IsValidStatus(status) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid status")
	}
	return status, nil
}

// parseBody decodes the JSON body into dst
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}

// ClientIP returns the address a request originates from, honouring Cloudflare and proxy headers
func ClientIP(c *fiber.Ctx) string {
	if ip := strings.TrimSpace(c.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if ip := strings.TrimSpace(c.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return strings.TrimPrefix(c.IP(), "::ffff:")
}
