package store

import "context"

// Store is the source of the suggestion names.
// Implementations: CSV file, MySQL (GORM) and Redis, plus a mock for tests.
type Store interface {
	// ListNames returns every stored name. Order and duplicates are
	// implementation defined; the service normalises them.
	ListNames(ctx context.Context) ([]string, error)

	// Close cleans up resources (database connections, file handles, etc.)
	Close() error
}
