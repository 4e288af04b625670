package router

import (
	"net/http"

	_ "github.com/evyataryagoni/citysuggest/docs" // Swagger docs
	"github.com/evyataryagoni/citysuggest/internal/handler"
	"github.com/evyataryagoni/citysuggest/internal/limiter"
	"github.com/evyataryagoni/citysuggest/internal/logger"
	"github.com/evyataryagoni/citysuggest/internal/metrics"
	custommiddleware "github.com/evyataryagoni/citysuggest/internal/middleware"
	v1 "github.com/evyataryagoni/citysuggest/internal/router/v1"
	"github.com/evyataryagoni/citysuggest/internal/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// BinderScriptRoute is where the compiled binder bundle is served
const BinderScriptRoute = "/static/binder.js"

// Dependencies groups everything the router wires together
type Dependencies struct {
	Suggestions *handler.SuggestionHandler
	Pages       *web.Pages
	Limiter     limiter.Limiter
	Metrics     *metrics.Metrics
	Logger      *logger.Logger

	// Gatherer backs /metrics, prometheus.DefaultGatherer when nil
	Gatherer prometheus.Gatherer

	// BinderScriptPath is the compiled GopherJS bundle, not served when empty
	BinderScriptPath string
}

// SetupRouter creates the chi router with the middleware stack and all routes
func SetupRouter(deps Dependencies) chi.Router {
	r := chi.NewRouter()

	// Order matters: RequestID first so logging can read it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.LoggingMiddleware(deps.Logger))
	r.Use(middleware.Recoverer)
	r.Use(custommiddleware.RateLimitMiddleware(deps.Limiter))
	r.Use(custommiddleware.MetricsMiddleware(deps.Metrics))

	// Page routes
	r.Get("/", deps.Pages.Home)
	r.Post("/", deps.Pages.Home)
	r.Get("/home", deps.Pages.Home)
	r.Post("/home", deps.Pages.Home)
	r.Get("/about", deps.Pages.About)

	// Widget data source
	r.Get("/_autocomplete", deps.Suggestions.Autocomplete)

	r.Mount("/v1", v1.SetupRoutes(deps.Suggestions))

	r.Get("/health", healthCheckHandler)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Access at: http://localhost:8000/swagger/index.html
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	if deps.BinderScriptPath != "" {
		r.Get(BinderScriptRoute, binderScriptHandler(deps.BinderScriptPath))
	}

	return r
}

// healthCheckHandler returns 200 OK while the process is serving
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func binderScriptHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript")
		http.ServeFile(w, r, path)
	}
}
