package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/evyataryagoni/citysuggest/internal/models"
	"github.com/evyataryagoni/citysuggest/internal/service"
)

// SuggestionHandler handles the JSON suggestion endpoints.
// It deals with HTTP concerns only; filtering and validation live in the service.
type SuggestionHandler struct {
	service *service.SuggestionService
}

// NewSuggestionHandler creates a new suggestion handler with the given service
func NewSuggestionHandler(service *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{
		service: service,
	}
}

// Autocomplete handles GET /_autocomplete
// @Summary      Suggestion list
// @Description  Returns every name as a JSON array of strings. With term, only the matching names.
// @Tags         Suggestions
// @Produce      json
// @Param        term  query     string  false  "Filter term"  example(lo)
// @Success      200   {array}   string
// @Failure      400   {object}  models.ErrorResponse  "Invalid term"
// @Failure      429   {object}  models.ErrorResponse  "Rate limit exceeded"
// @Failure      500   {object}  models.ErrorResponse  "Internal server error"
// @Router       /_autocomplete [get]
func (h *SuggestionHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		list models.SuggestionList
		err  error
	)
	if query.Has("term") {
		list, err = h.service.Suggest(r.Context(), query.Get("term"), 0)
	} else {
		list, err = h.service.List(r.Context())
	}
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, list)
}

// Suggestions handles GET /v1/suggestions?term=<term>&limit=<n>
// @Summary      Filtered suggestions
// @Description  Returns the names matching term (word prefix, case-insensitive), at most limit of them
// @Tags         Suggestions
// @Produce      json
// @Param        term   query     string   false  "Filter term"  example(new y)
// @Param        limit  query     integer  false  "Maximum number of suggestions (0 = all)"  example(10)
// @Success      200    {object}  models.SuggestionsResponse
// @Failure      400    {object}  models.ErrorResponse  "Invalid term or limit"
// @Failure      429    {object}  models.ErrorResponse  "Rate limit exceeded"
// @Failure      500    {object}  models.ErrorResponse  "Internal server error"
// @Router       /v1/suggestions [get]
func (h *SuggestionHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "'limit' must be an integer")
			return
		}
		limit = parsed
	}

	list, err := h.service.Suggest(r.Context(), term, limit)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.SuggestionsResponse{
		Term:        term,
		Count:       len(list),
		Suggestions: list,
	})
}

// respondServiceError maps service errors to status codes
func (h *SuggestionHandler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTerm), errors.Is(err, service.ErrInvalidLimit):
		h.respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// respondJSON writes a JSON response with the given status code
func (h *SuggestionHandler) respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent, nothing more to report to the client
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// respondError writes an error response with consistent formatting
func (h *SuggestionHandler) respondError(w http.ResponseWriter, statusCode int, message string) {
	h.respondJSON(w, statusCode, models.ErrorResponse{Error: message})
}
