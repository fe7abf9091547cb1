package router

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"

	"github.com/ManuelReschke/NewsFox/app/controllers"
	"github.com/ManuelReschke/NewsFox/internal/pkg/cache"
	"github.com/ManuelReschke/NewsFox/internal/pkg/env"
)

const (
	apiRateLimitMax        = 120
	apiRateLimitExpiration = time.Minute
)

// newLimiterStorage returns the Redis storage for rate limit counters when
// RATE_LIMIT_STORAGE=redis and the cache is connected, nil (in-memory) otherwise
func newLimiterStorage(kind string) fiber.Storage {
	if kind != "redis" {
		return nil
	}

	cacheClient := cache.GetClient()
	if cacheClient == nil {
		log.Warn("[RateLimit] RATE_LIMIT_STORAGE=redis but cache is disabled, using memory")
		return nil
	}

	host := "localhost"
	port := 6379
	password := env.GetEnv("CACHE_PASSWORD", "")
	addr := cacheClient.Options().Addr
	if h, p, err := net.SplitHostPort(addr); err == nil {
		host = h
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}
	if p := cacheClient.Options().Password; p != "" {
		password = p
	}

	log.Infof("[RateLimit] Using Redis storage at %s", addr)
	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1, // keep counters apart from the cache in DB 0
		Reset:    false,
	})
}

func newAPILimiter(kind string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          apiRateLimitMax,
		Expiration:   apiRateLimitExpiration,
		KeyGenerator: controllers.ClientIP,
		Storage:      newLimiterStorage(kind),
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":   "too_many_requests",
				"message": "Rate limit exceeded, try again later",
			})
		},
	})
}
