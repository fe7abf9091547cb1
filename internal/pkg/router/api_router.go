package router

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsFox/app/controllers"
	"github.com/ManuelReschke/NewsFox/app/repository"
	"github.com/ManuelReschke/NewsFox/internal/pkg/middleware"
	"github.com/ManuelReschke/NewsFox/internal/pkg/storage"
)

// ApiConfig holds the settings of the JSON API
type ApiConfig struct {
	APIKey         string // shared editor key, empty disables key auth
	RateLimitStore string // "memory" or "redis"
}

type ApiRouter struct {
	db      *gorm.DB
	factory *repository.Factory
	store   *storage.Store
	cfg     ApiConfig
}

func NewApiRouter(db *gorm.DB, factory *repository.Factory, store *storage.Store, cfg ApiConfig) *ApiRouter {
	return &ApiRouter{db: db, factory: factory, store: store, cfg: cfg}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", newAPILimiter(h.cfg.RateLimitStore))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")
	v1.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"ping": "pong"})
	})

	editor := middleware.EditorAuth(h.factory.GetUserRepository(), h.cfg.APIKey)

	categories := controllers.NewCategoryController(h.factory.GetMainCategoryRepository())
	v1.Get("/categories", categories.HandleList)
	v1.Get("/categories/:slug", categories.HandleGet)
	v1.Post("/categories", editor, categories.HandleCreate)
	v1.Put("/categories/:id", editor, categories.HandleUpdate)
	v1.Delete("/categories/:id", editor, categories.HandleDelete)

	rooms := controllers.NewNewsRoomController(h.factory.GetNewsRoomRepository())
	v1.Get("/newsrooms", rooms.HandleList)
	v1.Post("/newsrooms", editor, rooms.HandleCreate)
	v1.Put("/newsrooms/:id", editor, rooms.HandleUpdate)
	v1.Delete("/newsrooms/:id", editor, rooms.HandleDelete)

	news := controllers.NewNewsController(h.factory.GetNewsRepository(), h.factory.GetTagRepository())
	v1.Get("/news", news.HandleList)
	v1.Get("/news/:slug", news.HandleGet)
	v1.Post("/news", editor, news.HandleCreate)
	v1.Put("/news/:id", editor, news.HandleUpdate)
	v1.Delete("/news/:id", editor, news.HandleDelete)

	pages := controllers.NewPageController(h.factory.GetPageRepository())
	v1.Get("/pages", pages.HandleList)
	v1.Get("/pages/:slug", pages.HandleGet)
	v1.Post("/pages", editor, pages.HandleCreate)
	v1.Put("/pages/:id", editor, pages.HandleUpdate)
	v1.Delete("/pages/:id", editor, pages.HandleDelete)

	settings := controllers.NewSettingController(h.factory.GetSettingRepository())
	v1.Get("/settings", settings.HandleGet)
	v1.Put("/settings", editor, settings.HandleUpdate)

	tags := controllers.NewTagController(h.factory.GetTagRepository())
	v1.Get("/tags", tags.HandleList)

	profiles := controllers.NewProfileController(h.factory.GetUserProfileRepository(), h.store)
	v1.Get("/profiles/:slug", profiles.HandleGet)

	stats := controllers.NewStatsController(h.db)
	v1.Get("/stats", editor, stats.HandleGet)

	if h.store != nil {
		media := controllers.NewMediaController(h.store)
		v1.Post("/media/:kind", editor, media.HandleUpload)
	}
}
