// Package ratelimit implements a fixed-window request quota per client IP.
// The window counter lives in Redis when one is configured, so replicas share
// a quota; otherwise it lives in process memory and resets on restart.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"todoback/internal/apperr"
	"todoback/internal/resp"
)

const keyPrefix = "ratelimit:"

// Store counts hits per key inside the current window.
type Store interface {
	// Incr bumps the counter for key and returns its value. The counter
	// expires when the window that opened on its first hit closes.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisStore keeps window counters in Redis.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := s.rdb.Incr(ctx, keyPrefix+key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := s.rdb.Expire(ctx, keyPrefix+key, window).Err(); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// MemoryStore keeps window counters in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count   int64
	resetAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string]*window)}
}

func (s *MemoryStore) Incr(_ context.Context, key string, d time.Duration) (int64, error) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(d)}
		s.windows[key] = w
	}
	w.count++
	return w.count, nil
}

// Middleware rejects requests over max hits per window with 429. It runs
// ahead of the error translator in the chain, so it writes its envelope
// itself. The counter store failing open would hide outages, so a store
// error is a 500.
func Middleware(store Store, max int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := store.Incr(c.Request.Context(), c.ClientIP(), window)
		if err != nil {
			resp.WriteError(c, apperr.Internal(err), false)
			c.Abort()
			return
		}
		if n > max {
			resp.WriteError(c, apperr.RateLimited("Too many requests, please try again later"), false)
			c.Abort()
			return
		}
		c.Next()
	}
}
