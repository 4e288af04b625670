package limiter

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownType is returned by NewLimiter for an unsupported limiter type
var ErrUnknownType = errors.New("unknown rate limiter type")

// LimiterConfig describes a limit of Limit requests per Window for each client
type LimiterConfig struct {
	Type   string // "memory" or "redis"
	Limit  int
	Window time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Rate returns the allowed requests per second.
// 10 requests per 5 seconds is 2.0; a zero or negative window counts as one second.
func (c LimiterConfig) Rate() float64 {
	window := c.Window
	if window <= 0 {
		window = time.Second
	}
	return float64(c.Limit) / window.Seconds()
}

// NewLimiter builds the limiter named by cfg.Type
func NewLimiter(cfg LimiterConfig) (Limiter, error) {
	switch kind := strings.ToLower(strings.TrimSpace(cfg.Type)); kind {
	case "memory", "":
		return NewMemoryLimiter(cfg.Rate()), nil

	case "redis":
		rl, err := NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.Rate())
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis limiter: %w", err)
		}
		return rl, nil

	default:
		return nil, fmt.Errorf("%w: %q (supported: memory, redis)", ErrUnknownType, cfg.Type)
	}
}
