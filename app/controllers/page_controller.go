package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsFox/app/models"
	"github.com/ManuelReschke/NewsFox/app/repository"
	"github.com/ManuelReschke/NewsFox/internal/pkg/utils"
)

type pageRequest struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Description     *string `json:"description"`
	ContentImage    *string `json:"content_image"`
	ImageCaption    *string `json:"image_caption"`
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	MetaKeywords    *string `json:"meta_keywords"`
	Sequence        *uint   `json:"sequence"`
	Status          *string `json:"status"`
}

func (r *pageRequest) apply(page *models.Page) {
	if r.Title != nil {
		page.Title = *r.Title
	}
	if r.Slug != nil {
		page.Slug = *r.Slug
	}
	if r.Description != nil {
		page.Description = utils.SanitizeHTML(*r.Description)
	}
	if r.ContentImage != nil {
		page.ContentImage = *r.ContentImage
	}
	if r.ImageCaption != nil {
		page.ImageCaption = *r.ImageCaption
	}
	if r.MetaTitle != nil {
		page.MetaTitle = *r.MetaTitle
	}
	if r.MetaDescription != nil {
		page.MetaDescription = utils.StripHTML(*r.MetaDescription)
	}
	if r.MetaKeywords != nil {
		page.MetaKeywords = *r.MetaKeywords
	}
	if r.Sequence != nil {
		page.Sequence = *r.Sequence
	}
	if r.Status != nil {
		page.Status = *r.Status
	}
}

// PageController serves the static page API
type PageController struct {
	pageRepo repository.PageRepository
}

func NewPageController(pageRepo repository.PageRepository) *PageController {
	return &PageController{pageRepo: pageRepo}
}

func (pc *PageController) HandleList(c *fiber.Ctx) error {
	status, err := queryStatus(c)
	if err != nil {
		return handleError(c, err)
	}
	pages, err := pc.pageRepo.List(c.UserContext(), status)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"data": pages})
}

func (pc *PageController) HandleGet(c *fiber.Ctx) error {
	page, err := pc.pageRepo.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(page)
}

func (pc *PageController) HandleCreate(c *fiber.Ctx) error {
	var req pageRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	page := &models.Page{}
	req.apply(page)
	if err := pc.pageRepo.Create(c.UserContext(), page); err != nil {
		return handleError(c, err)
	}
	invalidateStatistics()
	return c.Status(fiber.StatusCreated).JSON(page)
}

func (pc *PageController) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}
	var req pageRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	page, err := pc.pageRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	req.apply(page)
	if err := pc.pageRepo.Update(c.UserContext(), page); err != nil {
		return handleError(c, err)
	}
	return c.JSON(page)
}

func (pc *PageController) HandleDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}
	if err := pc.pageRepo.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	invalidateStatistics()
	return c.SendStatus(fiber.StatusNoContent)
}
