package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsFox/app/models"
	"github.com/ManuelReschke/NewsFox/app/repository"
	"github.com/ManuelReschke/NewsFox/internal/pkg/utils"
)

// categoryRequest is the JSON body of category writes. Nil fields are left untouched on update.
type categoryRequest struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Featured    *bool   `json:"featured"`
	Sequence    *uint   `json:"sequence"`
	Status      *string `json:"status"`
}

func (r *categoryRequest) apply(category *models.MainCategory) {
	if r.Title != nil {
		category.Title = *r.Title
	}
	if r.Slug != nil {
		category.Slug = *r.Slug
	}
	if r.Description != nil {
		category.Description = utils.SanitizeHTML(*r.Description)
	}
	if r.Image != nil {
		category.Image = *r.Image
	}
	if r.Featured != nil {
		category.Featured = *r.Featured
	}
	if r.Sequence != nil {
		category.Sequence = *r.Sequence
	}
	if r.Status != nil {
		category.Status = *r.Status
	}
}

// CategoryController serves the main category API
type CategoryController struct {
	categoryRepo repository.MainCategoryRepository
}

func NewCategoryController(categoryRepo repository.MainCategoryRepository) *CategoryController {
	return &CategoryController{categoryRepo: categoryRepo}
}

// HandleList returns all categories, optionally filtered by ?status= and ?featured=true
func (cc *CategoryController) HandleList(c *fiber.Ctx) error {
	if c.QueryBool("featured") {
		categories, err := cc.categoryRepo.ListFeatured(c.UserContext())
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(fiber.Map{"data": categories})
	}

	status, err := queryStatus(c)
	if err != nil {
		return handleError(c, err)
	}
	categories, err := cc.categoryRepo.List(c.UserContext(), status)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"data": categories})
}

func (cc *CategoryController) HandleGet(c *fiber.Ctx) error {
	category, err := cc.categoryRepo.GetBySlug(c.UserContext(), c.Params("slug"), "")
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(category)
}

func (cc *CategoryController) HandleCreate(c *fiber.Ctx) error {
	var req categoryRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	category := &models.MainCategory{}
	req.apply(category)
	if err := cc.categoryRepo.Create(c.UserContext(), category); err != nil {
		return handleError(c, err)
	}
	invalidateStatistics()
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (cc *CategoryController) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}
	var req categoryRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	category, err := cc.categoryRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	req.apply(category)
	if err := cc.categoryRepo.Update(c.UserContext(), category); err != nil {
		return handleError(c, err)
	}
	return c.JSON(category)
}

// HandleDelete removes the category together with its news
func (cc *CategoryController) HandleDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}
	if err := cc.categoryRepo.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	invalidateStatistics()
	return c.SendStatus(fiber.StatusNoContent)
}
