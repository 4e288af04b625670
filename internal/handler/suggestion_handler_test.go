package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/evyataryagoni/citysuggest/internal/models"
	"github.com/evyataryagoni/citysuggest/internal/service"
	"github.com/evyataryagoni/citysuggest/internal/store"
)

func newTestHandler(s store.Store) *SuggestionHandler {
	return NewSuggestionHandler(service.NewSuggestionService(s, nil, nil, 0))
}

// TestSuggestionHandler_Autocomplete_Success tests the full list response
func TestSuggestionHandler_Autocomplete_Success(t *testing.T) {
	handler := newTestHandler(store.NewMockStore())

	req := httptest.NewRequest(http.MethodGet, "/_autocomplete", nil)
	rec := httptest.NewRecorder()

	handler.Autocomplete(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if contentType := rec.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	var list []string
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	expected := []string{"London", "Lyon", "Paris"}
	if !reflect.DeepEqual(list, expected) {
		t.Errorf("expected %v, got %v", expected, list)
	}
}

// TestSuggestionHandler_Autocomplete_Empty tests that an empty store yields [] and not null
func TestSuggestionHandler_Autocomplete_Empty(t *testing.T) {
	handler := newTestHandler(store.NewEmptyMockStore())

	req := httptest.NewRequest(http.MethodGet, "/_autocomplete", nil)
	rec := httptest.NewRecorder()

	handler.Autocomplete(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected body '[]', got '%s'", body)
	}
}

// TestSuggestionHandler_Autocomplete_Term tests server-side filtering
func TestSuggestionHandler_Autocomplete_Term(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{"prefix", "Lo", []string{"London"}},
		{"lowercase", "l", []string{"London", "Lyon"}},
		{"no match", "berlin", []string{}},
		{"empty term", "", []string{"London", "Lyon", "Paris"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(store.NewMockStore())

			req := httptest.NewRequest(http.MethodGet, "/_autocomplete?term="+url.QueryEscape(tt.term), nil)
			rec := httptest.NewRecorder()

			handler.Autocomplete(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rec.Code)
			}

			var list []string
			json.NewDecoder(rec.Body).Decode(&list)
			if !reflect.DeepEqual(list, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, list)
			}
		})
	}
}

// TestSuggestionHandler_Autocomplete_StoreError tests internal errors
func TestSuggestionHandler_Autocomplete_StoreError(t *testing.T) {
	mockStore := store.NewMockStore()
	mockStore.ListNamesError = errors.New("database connection failed")
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/_autocomplete", nil)
	rec := httptest.NewRecorder()

	handler.Autocomplete(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}

	var errResp models.ErrorResponse
	json.NewDecoder(rec.Body).Decode(&errResp)

	// Internal details must not leak
	if errResp.Error != "Internal server error" {
		t.Errorf("expected generic error message, got: %s", errResp.Error)
	}
}

// TestSuggestionHandler_Autocomplete_TermTooLong tests validation errors
func TestSuggestionHandler_Autocomplete_TermTooLong(t *testing.T) {
	handler := newTestHandler(store.NewMockStore())

	term := strings.Repeat("a", service.MaxTermLength+1)
	req := httptest.NewRequest(http.MethodGet, "/_autocomplete?term="+term, nil)
	rec := httptest.NewRecorder()

	handler.Autocomplete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

// TestSuggestionHandler_Suggestions_Success tests the versioned endpoint
func TestSuggestionHandler_Suggestions_Success(t *testing.T) {
	handler := newTestHandler(&store.MockStore{
		Names: []string{"New York", "Newark", "York", "Paris"},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/suggestions?term=york&limit=5", nil)
	rec := httptest.NewRecorder()

	handler.Suggestions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp models.SuggestionsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Term != "york" {
		t.Errorf("expected term 'york', got '%s'", resp.Term)
	}
	expected := models.SuggestionList{"New York", "York"}
	if !reflect.DeepEqual(resp.Suggestions, expected) {
		t.Errorf("expected %v, got %v", expected, resp.Suggestions)
	}
	if resp.Count != 2 {
		t.Errorf("expected count 2, got %d", resp.Count)
	}
}

// TestSuggestionHandler_Suggestions_Limit tests limit handling
func TestSuggestionHandler_Suggestions_Limit(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedCount  int
	}{
		{"no limit", "term=l", http.StatusOK, 2},
		{"limit one", "term=l&limit=1", http.StatusOK, 1},
		{"zero limit", "term=l&limit=0", http.StatusOK, 2},
		{"not a number", "term=l&limit=abc", http.StatusBadRequest, 0},
		{"negative", "term=l&limit=-3", http.StatusBadRequest, 0},
		{"too large", "term=l&limit=100000", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(store.NewMockStore())

			req := httptest.NewRequest(http.MethodGet, "/v1/suggestions?"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.Suggestions(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}

			if tt.expectedStatus != http.StatusOK {
				var errResp models.ErrorResponse
				json.NewDecoder(rec.Body).Decode(&errResp)
				if errResp.Error == "" {
					t.Error("expected error message")
				}
				return
			}

			var resp models.SuggestionsResponse
			json.NewDecoder(rec.Body).Decode(&resp)
			if resp.Count != tt.expectedCount {
				t.Errorf("expected count %d, got %d", tt.expectedCount, resp.Count)
			}
		})
	}
}

// TestSuggestionHandler_Suggestions_StoreError tests internal errors
func TestSuggestionHandler_Suggestions_StoreError(t *testing.T) {
	mockStore := store.NewMockStore()
	mockStore.ListNamesError = errors.New("redis down")
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/v1/suggestions?term=lo", nil)
	rec := httptest.NewRecorder()

	handler.Suggestions(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
}

// TestSuggestionHandler_RespondJSON tests the JSON helper
func TestSuggestionHandler_RespondJSON(t *testing.T) {
	handler := &SuggestionHandler{}
	rec := httptest.NewRecorder()

	handler.respondJSON(rec, http.StatusCreated, map[string]string{"key": "value"})

	if rec.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rec.Code)
	}

	var result map[string]string
	json.NewDecoder(rec.Body).Decode(&result)
	if result["key"] != "value" {
		t.Errorf("expected key=value, got %v", result)
	}
}
