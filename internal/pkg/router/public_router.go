package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsFox/app/controllers"
	"github.com/ManuelReschke/NewsFox/app/repository"
	"github.com/ManuelReschke/NewsFox/internal/pkg/constants"
)

// PublicRouter serves the detail URLs models reverse to
type PublicRouter struct {
	repos *repository.Repositories
}

func NewPublicRouter(repos *repository.Repositories) *PublicRouter {
	return &PublicRouter{repos: repos}
}

func (h PublicRouter) InstallRouter(app *fiber.App) {
	public := controllers.NewPublicController(h.repos)

	app.Get(constants.PublicRoute, public.HandleHome)
	app.Get(constants.CategoryDetailRoute, public.HandleCategory)
	app.Get(constants.NewsDetailRoute, public.HandleNews)
	app.Get(constants.PageDetailRoute, public.HandlePage)
}
