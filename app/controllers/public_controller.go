package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsFox/app/models"
	"github.com/ManuelReschke/NewsFox/app/repository"
)

const categoryNewsLimit = 20

// PublicController serves the detail URLs returned by AbsoluteURL. Drafts are hidden.
type PublicController struct {
	repos *repository.Repositories
}

func NewPublicController(repos *repository.Repositories) *PublicController {
	return &PublicController{repos: repos}
}

// HandleCategory returns a published category with its newest published news
func (pc *PublicController) HandleCategory(c *fiber.Ctx) error {
	category, err := pc.repos.MainCategory.GetBySlug(c.UserContext(), c.Params("slug"), models.STATUS_PUBLISHED)
	if err != nil {
		return handleError(c, err)
	}

	news, err := pc.repos.News.List(c.UserContext(), repository.NewsFilter{
		Status:         models.STATUS_PUBLISHED,
		MainCategoryID: category.ID,
		Limit:          categoryNewsLimit,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"category": category,
		"url":      category.AbsoluteURL(),
		"news":     news,
	})
}

func (pc *PublicController) HandleNews(c *fiber.Ctx) error {
	news, err := pc.repos.News.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return handleError(c, err)
	}
	if !news.IsPublished() || !news.MainCategory.IsPublished() {
		return handleError(c, repository.ErrNotFound)
	}

	return c.JSON(fiber.Map{
		"news": news,
		"url":  news.AbsoluteURL(),
		"tags": news.TagNames(),
	})
}

func (pc *PublicController) HandlePage(c *fiber.Ctx) error {
	page, err := pc.repos.Page.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return handleError(c, err)
	}
	if !page.IsPublished() {
		return handleError(c, repository.ErrNotFound)
	}

	return c.JSON(fiber.Map{
		"page": page,
		"url":  page.AbsoluteURL(),
	})
}

// HandleHome returns the data of the front page: menu, slider, top six and home news
func (pc *PublicController) HandleHome(c *fiber.Ctx) error {
	ctx := c.UserContext()

	menu, err := pc.repos.MainCategory.ListFeatured(ctx)
	if err != nil {
		return handleError(c, err)
	}

	home := true
	sections := map[string]repository.NewsFilter{
		"slider": {Status: models.STATUS_PUBLISHED, TopNews: models.TOP_NEWS_SLIDER, Limit: 5},
		"top":    {Status: models.STATUS_PUBLISHED, TopNews: models.TOP_NEWS_TOP6, Limit: 6},
		"home":   {Status: models.STATUS_PUBLISHED, IsHome: &home, Limit: categoryNewsLimit},
	}
	result := fiber.Map{"menu": menu}
	for name, filter := range sections {
		news, err := pc.repos.News.List(ctx, filter)
		if err != nil {
			return handleError(c, err)
		}
		result[name] = news
	}

	settings, err := pc.repos.Setting.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		settings = models.DefaultSiteSettings()
	} else if err != nil {
		return handleError(c, err)
	}
	result["settings"] = settings

	return c.JSON(result)
}
