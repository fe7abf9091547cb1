package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/NewsFox/internal/pkg/env"
)

const isolatedCacheTestRedisDB = 13

// newIsolatedRedisClient connects to the first reachable Redis on a scratch database
// and skips the test when there is none
func newIsolatedRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	hosts := []string{env.GetEnv("CACHE_HOST", "localhost"), "cache", "127.0.0.1"}
	port := env.GetEnv("CACHE_PORT", "6379")
	password := env.GetEnv("CACHE_PASSWORD", "")

	var lastErr error
	for _, host := range hosts {
		c := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", host, port),
			Password: password,
			DB:       isolatedCacheTestRedisDB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		_, err := c.Ping(pingCtx).Result()
		cancel()
		if err != nil {
			lastErr = err
			_ = c.Close()
			continue
		}

		require.NoError(t, c.FlushDB(context.Background()).Err())
		t.Cleanup(func() {
			_ = c.FlushDB(context.Background()).Err()
			_ = c.Close()
		})
		return c
	}

	t.Skipf("Skipping Redis-dependent test: no reachable Redis endpoint (%v)", lastErr)
	return nil
}

func TestDisabledCache(t *testing.T) {
	SetClient(nil)

	assert.False(t, IsEnabled())
	assert.ErrorIs(t, Set("k", "v", time.Minute), ErrDisabled)
	_, err := Get("k")
	assert.ErrorIs(t, err, ErrDisabled)
	assert.ErrorIs(t, Delete("k"), ErrDisabled)

	hit, err := GetJSON("k", &struct{}{})
	assert.False(t, hit)
	assert.ErrorIs(t, err, ErrDisabled)

	assert.False(t, IsMiss(ErrDisabled))
	assert.True(t, IsMiss(redis.Nil))
}

func TestSetupCacheDisabledByConfig(t *testing.T) {
	SetClient(nil)
	t.Setenv("CACHE_ENABLED", "false")
	delete(env.Env, "CACHE_ENABLED")

	SetupCache()
	assert.Nil(t, GetClient())
}

func TestJSONRoundTrip(t *testing.T) {
	SetClient(newIsolatedRedisClient(t))
	t.Cleanup(func() { SetClient(nil) })

	type payload struct {
		Title string `json:"title"`
		Count int    `json:"count"`
	}

	hit, err := GetJSON("newsfox:test", &payload{})
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, SetJSON("newsfox:test", payload{Title: "World", Count: 3}, time.Minute))

	var got payload
	hit, err = GetJSON("newsfox:test", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Title: "World", Count: 3}, got)

	require.NoError(t, Delete("newsfox:test"))
	hit, err = GetJSON("newsfox:test", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}
