package limiter

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
)

// windowScript increments the counter of the current window and sets its
// expiry on the first hit, atomically.
var windowScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return current
`)

// RedisLimiter is a fixed-window limiter shared by all instances through Redis.
// Keys look like "ratelimit:{client}:{window}" and expire after two windows.
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
	limit  int64
	now    func() time.Time
}

// NewRedisLimiter connects to Redis and creates a limiter for requestsPerSecond.
// Rates below one use a longer window: 0.2 req/s is one request per 5 seconds.
func NewRedisLimiter(addr, password string, db int, requestsPerSecond float64) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis for rate limiting: %w", err)
	}

	window := time.Second
	if requestsPerSecond > 0 && requestsPerSecond < 1.0 {
		window = time.Duration(math.Round(float64(time.Second) / requestsPerSecond))
	}

	return &RedisLimiter{
		client: client,
		window: window,
		limit:  int64(math.Ceil(requestsPerSecond*window.Seconds() - 1e-9)),
		now:    time.Now,
	}, nil
}

// Allow implements Limiter. Redis errors fail open.
func (rl *RedisLimiter) Allow(ctx context.Context, client string) bool {
	windowSeconds := int64(rl.window.Seconds())
	key := fmt.Sprintf("ratelimit:%s:%d", client, rl.now().Unix()/windowSeconds)

	count, err := windowScript.Run(ctx, rl.client, []string{key}, windowSeconds*2).Int64()
	if err != nil {
		return true
	}
	return count <= rl.limit
}

// Close closes the Redis connection
func (rl *RedisLimiter) Close() error {
	if rl.client != nil {
		return rl.client.Close()
	}
	return nil
}
