package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"

	"github.com/ManuelReschke/NewsFox/internal/pkg/env"
)

var (
	client *redis.Client
	ctx    = context.Background()
)

// ErrDisabled is returned by the helpers when no cache server is configured
var ErrDisabled = errors.New("cache disabled")

// SetupCache initializes the connection to the Redis cache server.
// Caching stays disabled when CACHE_ENABLED is not "true" or the server does not answer.
func SetupCache() {
	if env.GetEnv("CACHE_ENABLED", "false") != "true" {
		log.Info("[Cache] Cache disabled by configuration")
		return
	}

	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	c := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0, // use default DB
	})

	// Test the connection
	pong, err := c.Ping(ctx).Result()
	if err != nil {
		log.Warnf("[Cache] Could not connect to Redis cache, continuing without cache: %v", err)
		_ = c.Close()
		return
	}

	log.Infof("[Cache] Successfully connected to Redis cache: %s", pong)
	client = c
}

// SetClient replaces the cache client, nil disables caching
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the Redis client instance or nil when caching is disabled
func GetClient() *redis.Client {
	return client
}

// IsEnabled reports whether a cache server is connected
func IsEnabled() bool {
	return client != nil
}

// Set stores a value in the cache with the given key and expiration time
func Set(key string, value interface{}, expiration time.Duration) error {
	if client == nil {
		return ErrDisabled
	}
	return client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value from the cache by key
func Get(key string) (string, error) {
	if client == nil {
		return "", ErrDisabled
	}
	return client.Get(ctx, key).Result()
}

// Delete removes a value from the cache by key
func Delete(key string) error {
	if client == nil {
		return ErrDisabled
	}
	return client.Del(ctx, key).Err()
}

// IsMiss reports whether err means the key is not cached
func IsMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}

// SetJSON stores value as JSON
func SetJSON(key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Set(key, data, expiration)
}

// GetJSON decodes the cached JSON value into dest. It reports false on a cache miss.
func GetJSON(key string, dest interface{}) (bool, error) {
	raw, err := Get(key)
	if IsMiss(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}
