package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/NewsFox/internal/pkg/storage"
)

// MediaController accepts image uploads for avatars, logos, category and content images
type MediaController struct {
	store *storage.Store
}

func NewMediaController(store *storage.Store) *MediaController {
	return &MediaController{store: store}
}

// HandleUpload stores the multipart field "file" under the prefix of :kind and
// returns the relative path to put into the model's image field
func (mc *MediaController) HandleUpload(c *fiber.Ctx) error {
	kind, err := storage.ParseKind(c.Params("kind"))
	if err != nil {
		return handleError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "bad_request", "Missing file")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return handleError(c, err)
	}
	defer file.Close()

	stored, err := mc.store.SaveImage(c.UserContext(), kind, fileHeader.Filename, file)
	if err != nil {
		return handleError(c, err)
	}

	log.Infof("[Media] Stored %s upload %s from %s", kind, stored.Key, ClientIP(c))
	return c.Status(fiber.StatusCreated).JSON(stored)
}
