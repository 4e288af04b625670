package v1

import (
	"github.com/evyataryagoni/citysuggest/internal/handler"
	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures the /v1 API routes
func SetupRoutes(suggestionHandler *handler.SuggestionHandler) chi.Router {
	r := chi.NewRouter()

	// GET /v1/suggestions?term=<term>&limit=<n>
	r.Get("/suggestions", suggestionHandler.Suggestions)

	return r
}
