package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ManuelReschke/NewsFox/app/repository"
	"github.com/ManuelReschke/NewsFox/internal/pkg/cache"
	"github.com/ManuelReschke/NewsFox/internal/pkg/constants"
	"github.com/ManuelReschke/NewsFox/internal/pkg/database"
	"github.com/ManuelReschke/NewsFox/internal/pkg/env"
	"github.com/ManuelReschke/NewsFox/internal/pkg/router"
	"github.com/ManuelReschke/NewsFox/internal/pkg/storage"
	"github.com/ManuelReschke/NewsFox/internal/pkg/upload"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.MustSetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	if err := storage.SetupStorage(context.Background()); err != nil {
		panic(fmt.Sprintf("failed to set up storage: %v", err))
	}

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/newsfox to project root
		"../../../", // Fallback
	}

	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: upload.MaxImageSize + 1<<20, // one image plus multipart overhead
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// uploaded media of the local storage driver
	if cfg, err := storage.LoadConfig(); err == nil && cfg.Driver == storage.DriverLocal {
		app.Static(constants.MediaRoute, cfg.LocalPath, fiber.Static{
			CacheDuration: 10 * time.Second,
			Compress:      false,
			MaxAge:        604800, // 7 days
		})
	}

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}
