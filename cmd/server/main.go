package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evyataryagoni/citysuggest/internal/binder"
	"github.com/evyataryagoni/citysuggest/internal/config"
	"github.com/evyataryagoni/citysuggest/internal/handler"
	"github.com/evyataryagoni/citysuggest/internal/limiter"
	"github.com/evyataryagoni/citysuggest/internal/logger"
	"github.com/evyataryagoni/citysuggest/internal/metrics"
	"github.com/evyataryagoni/citysuggest/internal/models"
	"github.com/evyataryagoni/citysuggest/internal/router"
	"github.com/evyataryagoni/citysuggest/internal/service"
	"github.com/evyataryagoni/citysuggest/internal/store"
	"github.com/evyataryagoni/citysuggest/internal/web"
	"github.com/prometheus/client_golang/prometheus"
)

// @title           City Suggest API
// @version         1.0
// @description     Serves place names for autocomplete inputs, with rate limiting and multiple storage backends
// @termsOfService  http://swagger.io/terms/

// @contact.name   Evyatar Yagoni
// @contact.email  evyatar@example.com

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8000
// @BasePath  /
func main() {
	debug := flag.Bool("d", false, "debug mode: debug log level and console output")
	flag.Parse()

	appConfig := config.Load()
	if *debug {
		appConfig.Debug = true
	}

	appLogger := setupLogger(appConfig)
	dataStore := setupDataStore(appConfig, appLogger)
	defer dataStore.Close()

	rateLimiter := setupRateLimiter(appConfig, appLogger)
	defer rateLimiter.Close()

	metricsCollector := setupMetrics(appLogger)

	suggestionService := service.NewSuggestionService(
		dataStore,
		metricsCollector,
		appLogger,
		time.Duration(appConfig.SuggestionCacheTTL)*time.Second,
	)
	defer suggestionService.Close()

	pages := setupPages(appConfig, suggestionService, appLogger)

	appRouter := router.SetupRouter(router.Dependencies{
		Suggestions:      handler.NewSuggestionHandler(suggestionService),
		Pages:            pages,
		Limiter:          rateLimiter,
		Metrics:          metricsCollector,
		Logger:           appLogger,
		Gatherer:         prometheus.DefaultGatherer,
		BinderScriptPath: appConfig.BinderScriptPath,
	})

	startServer(appConfig, appRouter, appLogger)
}

// setupLogger initializes the structured logger
func setupLogger(appConfig *config.Config) *logger.Logger {
	level := appConfig.LogLevel
	if appConfig.Debug {
		level = "debug"
	}

	appLogger := logger.New(logger.Config{
		Level:  level,
		Pretty: appConfig.Debug,
	})

	appLogger.Info().Msg("Starting City Suggest Server...")
	appLogger.Info().
		Str("port", appConfig.Port).
		Bool("debug", appConfig.Debug).
		Str("rate_limiter_type", appConfig.RateLimitType).
		Int("rate_limit", appConfig.RateLimit).
		Int("rate_limit_window", appConfig.RateLimitWindow).
		Str("datastore_type", appConfig.DatastoreType).
		Str("datastore_path", appConfig.DatastorePath).
		Int("suggestion_cache_ttl", appConfig.SuggestionCacheTTL).
		Msg("Configuration loaded")

	return appLogger
}

// setupDataStore initializes the data store based on configuration
// Supports CSV, MySQL, and Redis backends
func setupDataStore(appConfig *config.Config, log *logger.Logger) store.Store {
	switch appConfig.DatastoreType {
	case "csv":
		csvStore, err := store.NewCSVStore(appConfig.DatastorePath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize CSV store")
		}
		log.Info().Str("path", appConfig.DatastorePath).Msg("CSV store initialized")
		return csvStore

	case "mysql":
		mysqlStore, err := store.NewMySQLStore(appConfig.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize MySQL store")
		}
		log.Info().Msg("MySQL store initialized")
		return mysqlStore

	case "redis":
		redisStore, err := store.NewRedisStore(appConfig.RedisAddr, appConfig.RedisPassword, appConfig.RedisDB)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Redis store")
		}
		log.Info().Str("addr", appConfig.RedisAddr).Msg("Redis store initialized")

		loadRedisDataIfEmpty(redisStore, appConfig.DatastorePath, log)
		return redisStore

	default:
		log.Fatal().Str("type", appConfig.DatastoreType).Msg("Unknown datastore type")
		return nil
	}
}

// loadRedisDataIfEmpty seeds the names set from CSV on first start
func loadRedisDataIfEmpty(redisStore *store.RedisStore, csvPath string, log *logger.Logger) {
	ctx := context.Background()

	isEmpty, err := redisStore.IsEmpty(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to check if Redis is empty")
		return
	}
	if !isEmpty {
		return
	}

	log.Info().Str("path", csvPath).Msg("Redis is empty, loading names from CSV")
	count, err := redisStore.LoadFromCSV(ctx, csvPath)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load names")
		return
	}
	log.Info().Int("count", count).Msg("Names loaded into Redis")
}

// setupRateLimiter initializes the rate limiter
// Supports in-memory and Redis-based rate limiting
func setupRateLimiter(appConfig *config.Config, log *logger.Logger) limiter.Limiter {
	limiterConfig := limiter.LimiterConfig{
		Type:          appConfig.RateLimitType,
		Limit:         appConfig.RateLimit,
		Window:        time.Duration(appConfig.RateLimitWindow) * time.Second,
		RedisAddr:     appConfig.RedisAddr,
		RedisPassword: appConfig.RedisPassword,
		RedisDB:       appConfig.RedisDB,
	}

	rateLimiter, err := limiter.NewLimiter(limiterConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize rate limiter")
	}

	log.Info().
		Str("type", appConfig.RateLimitType).
		Float64("requests_per_second", limiterConfig.Rate()).
		Msg("Rate limiter initialized")

	return rateLimiter
}

// setupMetrics initializes the Prometheus metrics collector
func setupMetrics(log *logger.Logger) *metrics.Metrics {
	metricsCollector := metrics.New()
	log.Info().Msg("Metrics initialized")
	return metricsCollector
}

// setupPages loads the widget options and parses the page templates.
// Invalid options fall back to the defaults so the page still binds.
func setupPages(appConfig *config.Config, svc *service.SuggestionService, log *logger.Logger) *web.Pages {
	options, err := config.LoadWidgetOptions(appConfig.WidgetConfigPath)
	if err != nil {
		log.Warn().Err(err).Str("path", appConfig.WidgetConfigPath).Msg("Using default widget options")
	}
	if err := binder.ValidateOptions(options); err != nil {
		log.Warn().Err(err).Msg("Widget options rejected, using defaults")
		options = models.DefaultBindOptions()
	}

	pageConfig := web.PageConfig{
		Endpoint: "/_autocomplete",
		Options:  options,
	}
	if appConfig.BinderScriptPath != "" {
		pageConfig.BinderScript = router.BinderScriptRoute
	}

	pages, err := web.NewPages(pageConfig, svc, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize pages")
	}
	return pages
}

// startServer serves until SIGINT or SIGTERM, then drains in-flight requests
func startServer(appConfig *config.Config, appRouter http.Handler, log *logger.Logger) {
	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           appRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("port", appConfig.Port).
			Str("autocomplete", "http://localhost:"+appConfig.Port+"/_autocomplete").
			Str("api_endpoint", "http://localhost:"+appConfig.Port+"/v1/suggestions?term=<term>").
			Str("health_check", "http://localhost:"+appConfig.Port+"/health").
			Str("metrics", "http://localhost:"+appConfig.Port+"/metrics").
			Str("swagger", "http://localhost:"+appConfig.Port+"/swagger/index.html").
			Msg("Server is running")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
