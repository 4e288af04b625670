package store

import "context"

// MockStore is a test double for the Store interface
type MockStore struct {
	Names []string

	// Track method calls for verification in tests
	ListNamesCalls int
	CloseCalled    bool

	// Control behavior for error scenarios
	ListNamesError error
	CloseError     error
}

// NewMockStore creates a mock store with a few sample names
func NewMockStore() *MockStore {
	return &MockStore{
		Names: []string{"Paris", "London", "Lyon"},
	}
}

// NewEmptyMockStore creates a mock store with no names
func NewEmptyMockStore() *MockStore {
	return &MockStore{Names: []string{}}
}

// ListNames implements the Store interface
func (m *MockStore) ListNames(ctx context.Context) ([]string, error) {
	m.ListNamesCalls++

	if m.ListNamesError != nil {
		return nil, m.ListNamesError
	}

	names := make([]string, len(m.Names))
	copy(names, m.Names)
	return names, nil
}

// Close implements the Store interface
func (m *MockStore) Close() error {
	m.CloseCalled = true
	return m.CloseError
}
