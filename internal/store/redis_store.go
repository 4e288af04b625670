package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NamesKey is the Redis set holding the suggestion names
const NamesKey = "suggestions:names"

// RedisStore implements Store with a Redis set
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and checks the connection
//
// Parameters:
//   - addr: Redis server address (e.g., "localhost:6379")
//   - password: Redis password (empty string if no password)
//   - db: Redis database number
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// ListNames returns the members of the names set (unordered)
func (s *RedisStore) ListNames(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, NamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("Redis query failed: %w", err)
	}
	return names, nil
}

// Add stores names in the set. Existing names are left as they are.
func (s *RedisStore) Add(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}

	members := make([]interface{}, len(names))
	for i, name := range names {
		members[i] = name
	}

	if err := s.client.SAdd(ctx, NamesKey, members...).Err(); err != nil {
		return fmt.Errorf("failed to store in Redis: %w", err)
	}
	return nil
}

// LoadFromCSV copies the names of a CSV file into Redis and returns how many were read
func (s *RedisStore) LoadFromCSV(ctx context.Context, csvPath string) (int, error) {
	csvStore, err := NewCSVStore(csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to load CSV: %w", err)
	}
	defer csvStore.Close()

	names, _ := csvStore.ListNames(ctx)
	if err := s.Add(ctx, names...); err != nil {
		return 0, err
	}
	return len(names), nil
}

// IsEmpty reports whether the names set is missing or empty
func (s *RedisStore) IsEmpty(ctx context.Context) (bool, error) {
	count, err := s.client.SCard(ctx, NamesKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check Redis keys: %w", err)
	}
	return count == 0, nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
