package main

import (
	"context"
	"fmt"
	"log"

	"github.com/evyataryagoni/citysuggest/internal/config"
	"github.com/evyataryagoni/citysuggest/internal/store"
)

// This tool loads suggestion names from CSV into Redis
// Usage: go run cmd/load-redis/main.go
func main() {
	fmt.Println("🔄 Loading names into Redis...")

	appConfig := config.Load()

	fmt.Printf("📡 Connecting to Redis at %s...\n", appConfig.RedisAddr)
	redisStore, err := store.NewRedisStore(appConfig.RedisAddr, appConfig.RedisPassword, appConfig.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisStore.Close()

	fmt.Println("✅ Connected to Redis")

	fmt.Printf("📁 Loading names from %s...\n", appConfig.DatastorePath)
	count, err := redisStore.LoadFromCSV(context.Background(), appConfig.DatastorePath)
	if err != nil {
		log.Fatalf("Failed to load CSV data: %v", err)
	}

	fmt.Printf("✅ Loaded %d names into %s\n", count, store.NamesKey)
	fmt.Println("\n💡 You can now start the server with DATASTORE_TYPE=redis")
}
