package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter limita la frecuencia de operaciones por clave.
type RateLimiter interface {
	Allow(ctx context.Context, key string) bool
}

type memoryRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
}

// NewMemoryRateLimiter crea un rate limiter en memoria de ventana deslizante.
func NewMemoryRateLimiter(window time.Duration, max int) RateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memoryRateLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
	}
}

func (l *memoryRateLimiter) Allow(_ context.Context, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now().UTC()
	cutoff := now.Add(-l.window)
	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	// Claves inactivas se limpian aca para que el mapa no crezca con cada IP.
	for k, hits := range l.hits {
		if k != key && (len(hits) == 0 || !hits[len(hits)-1].After(cutoff)) {
			delete(l.hits, k)
		}
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return true
}

const redisAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// redisRateLimiter uses a fixed window per key, shared across API replicas.
type redisRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

func NewRedisRateLimiter(client *redis.Client, window time.Duration, max int) RateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "finder:rl:",
	}
}

func (l *redisRateLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	redisKey := l.prefix + normalizedKey
	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisAllowScript, []string{redisKey}, seconds).Int()
	if err != nil {
		// fail-open: Redis caido no debe bloquear sesiones.
		return true
	}
	return count <= l.max
}
