package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsFox/app/models"
	"github.com/ManuelReschke/NewsFox/app/repository"
	"github.com/ManuelReschke/NewsFox/internal/pkg/utils"
)

const (
	defaultNewsLimit = 20
	maxNewsLimit     = 100
)

// newsRequest is the JSON body of news writes. Nil fields are left untouched on update,
// a nil Tags list keeps the current tags.
type newsRequest struct {
	Title           *string   `json:"title"`
	Slug            *string   `json:"slug"`
	NewsRoomID      *uint     `json:"news_room_id"`
	MainCategoryID  *uint     `json:"main_category_id"`
	IsHome          *bool     `json:"is_home"`
	Description     *string   `json:"description"`
	ContentImage    *string   `json:"content_image"`
	QuoteText       *string   `json:"quote_text"`
	ImageCaption    *string   `json:"image_caption"`
	VideoLink       *string   `json:"video_link"`
	Tags            *[]string `json:"tags"`
	MetaTitle       *string   `json:"meta_title"`
	MetaDescription *string   `json:"meta_description"`
	MetaKeywords    *string   `json:"meta_keywords"`
	Status          *string   `json:"status"`
	TopNews         *string   `json:"top_news"`
}

func (r *newsRequest) apply(news *models.News) {
	if r.Title != nil {
		news.Title = *r.Title
	}
	// the slug only changes when explicitly sent
	if r.Slug != nil {
		news.Slug = *r.Slug
	}
	if r.NewsRoomID != nil {
		if *r.NewsRoomID == 0 {
			news.NewsRoomID = nil
		} else {
			id := *r.NewsRoomID
			news.NewsRoomID = &id
		}
		news.NewsRoom = nil
	}
	if r.MainCategoryID != nil {
		news.MainCategoryID = *r.MainCategoryID
	}
	if r.IsHome != nil {
		news.IsHome = *r.IsHome
	}
	if r.Description != nil {
		news.Description = utils.SanitizeHTML(*r.Description)
	}
	if r.ContentImage != nil {
		news.ContentImage = *r.ContentImage
	}
	if r.QuoteText != nil {
		news.QuoteText = utils.StripHTML(*r.QuoteText)
	}
	if r.ImageCaption != nil {
		news.ImageCaption = *r.ImageCaption
	}
	if r.VideoLink != nil {
		news.VideoLink = strings.TrimSpace(*r.VideoLink)
	}
	if r.MetaTitle != nil {
		news.MetaTitle = *r.MetaTitle
	}
	if r.MetaDescription != nil {
		news.MetaDescription = utils.StripHTML(*r.MetaDescription)
	}
	if r.MetaKeywords != nil {
		news.MetaKeywords = *r.MetaKeywords
	}
	if r.Status != nil {
		news.Status = *r.Status
	}
	if r.TopNews != nil {
		news.TopNews = *r.TopNews
	}
}

// NewsController serves the news article API
type NewsController struct {
	newsRepo repository.NewsRepository
	tagRepo  repository.TagRepository
}

func NewNewsController(newsRepo repository.NewsRepository, tagRepo repository.TagRepository) *NewsController {
	return &NewsController{newsRepo: newsRepo, tagRepo: tagRepo}
}

// newsFilter builds the listing filter from the query string
func newsFilter(c *fiber.Ctx) (repository.NewsFilter, error) {
	var filter repository.NewsFilter
	var err error

	if filter.Status, err = queryStatus(c); err != nil {
		return filter, err
	}
	if filter.MainCategoryID, err = queryUint(c, "category"); err != nil {
		return filter, err
	}
	if filter.NewsRoomID, err = queryUint(c, "newsroom"); err != nil {
		return filter, err
	}

	filter.TopNews = strings.ToUpper(c.Query("top"))
	if filter.TopNews != "" && !models.IsValidTopNews(filter.TopNews) {
		return filter, fiber.NewError(fiber.StatusBadRequest, "Invalid top")
	}
	if raw := c.Query("home"); raw != "" {
		home := c.QueryBool("home")
		filter.IsHome = &home
	}
	filter.TagSlug = c.Query("tag")

	filter.Offset = c.QueryInt("offset", 0)
	filter.Limit = c.QueryInt("limit", defaultNewsLimit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Limit <= 0 || filter.Limit > maxNewsLimit {
		filter.Limit = defaultNewsLimit
	}
	return filter, nil
}

// HandleList returns a page of news articles together with the total count
func (nc *NewsController) HandleList(c *fiber.Ctx) error {
	filter, err := newsFilter(c)
	if err != nil {
		return handleError(c, err)
	}

	news, err := nc.newsRepo.List(c.UserContext(), filter)
	if err != nil {
		return handleError(c, err)
	}
	total, err := nc.newsRepo.Count(c.UserContext(), filter)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":   news,
		"total":  total,
		"offset": filter.Offset,
		"limit":  filter.Limit,
	})
}

func (nc *NewsController) HandleGet(c *fiber.Ctx) error {
	news, err := nc.newsRepo.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(news)
}

func (nc *NewsController) HandleCreate(c *fiber.Ctx) error {
	var req newsRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	news := &models.News{}
	req.apply(news)
	if req.Tags != nil {
		tags, err := nc.tagRepo.FindOrCreate(c.UserContext(), *req.Tags)
		if err != nil {
			return handleError(c, err)
		}
		news.Tags = tags
	}

	if err := nc.newsRepo.Create(c.UserContext(), news); err != nil {
		return handleError(c, err)
	}
	invalidateStatistics()
	return nc.respondWithNews(c, fiber.StatusCreated, news.ID)
}

func (nc *NewsController) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}
	var req newsRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	news, err := nc.newsRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	req.apply(news)
	if err := nc.newsRepo.Update(c.UserContext(), news); err != nil {
		return handleError(c, err)
	}
	invalidateStatistics()

	if req.Tags != nil {
		tags, err := nc.tagRepo.FindOrCreate(c.UserContext(), *req.Tags)
		if err != nil {
			return handleError(c, err)
		}
		if err := nc.newsRepo.SetTags(c.UserContext(), news.ID, tags); err != nil {
			return handleError(c, err)
		}
	}
	return nc.respondWithNews(c, fiber.StatusOK, news.ID)
}

func (nc *NewsController) HandleDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}
	if err := nc.newsRepo.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	invalidateStatistics()
	return c.SendStatus(fiber.StatusNoContent)
}

// respondWithNews reloads the article so relations reflect the stored state
func (nc *NewsController) respondWithNews(c *fiber.Ctx, status int, id uint) error {
	news, err := nc.newsRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(status).JSON(news)
}
