package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsFox/app/repository"
	"github.com/ManuelReschke/NewsFox/internal/pkg/database"
	"github.com/ManuelReschke/NewsFox/internal/pkg/env"
	"github.com/ManuelReschke/NewsFox/internal/pkg/storage"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter registers the public detail routes and the JSON API using the
// global repository factory and blob store
func InstallRouter(app *fiber.App) {
	factory := repository.GetGlobalFactory()
	store := storage.GetStore()

	setup(app,
		NewPublicRouter(factory.GetRepositories()),
		NewApiRouter(database.GetDB(), factory, store, ApiConfig{
			APIKey:         env.GetEnv("ADMIN_API_KEY", ""),
			RateLimitStore: env.GetEnv("RATE_LIMIT_STORAGE", "memory"),
		}),
	)
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
