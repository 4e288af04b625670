package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// nameColumns are the header names accepted for the name column
var nameColumns = []string{"name", "parkname"}

// CSVStore implements Store from a CSV file loaded into memory
type CSVStore struct {
	names []string
}

// NewCSVStore reads names from a CSV file.
//
// The first row is a header; the column called "name" (or "parkname")
// holds the names, any other column is ignored. Blank names are skipped.
//
// Example:
//
//	name,state
//	Yellowstone,WY
//	Zion,UT
func NewCSVStore(filePath string) (*CSVStore, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Rows may carry fewer trailing columns than the header
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	column := nameColumn(records[0])
	if column < 0 {
		return nil, fmt.Errorf("CSV header has no name column (expected one of %v)", nameColumns)
	}

	store := &CSVStore{names: make([]string, 0, len(records)-1)}
	for _, record := range records[1:] {
		if column >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[column])
		if name == "" {
			continue
		}
		store.names = append(store.names, name)
	}

	return store, nil
}

func nameColumn(header []string) int {
	for i, col := range header {
		col = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")))
		for _, want := range nameColumns {
			if col == want {
				return i
			}
		}
	}
	return -1
}

// ListNames returns the names in file order
func (s *CSVStore) ListNames(ctx context.Context) ([]string, error) {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names, nil
}

// Close is a no-op, all data is in memory
func (s *CSVStore) Close() error {
	return nil
}
