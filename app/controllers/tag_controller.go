package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsFox/app/repository"
)

type TagController struct {
	tagRepo repository.TagRepository
}

func NewTagController(tagRepo repository.TagRepository) *TagController {
	return &TagController{tagRepo: tagRepo}
}

func (tc *TagController) HandleList(c *fiber.Ctx) error {
	tags, err := tc.tagRepo.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"data": tags})
}
