package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/evyataryagoni/citysuggest/internal/logger"
	"github.com/evyataryagoni/citysuggest/internal/metrics"
	"github.com/evyataryagoni/citysuggest/internal/models"
	"github.com/evyataryagoni/citysuggest/internal/store"
	"github.com/evyataryagoni/citysuggest/internal/suggest"
)

const (
	MaxTermLength = 100
	MaxLimit      = 1000
)

var (
	ErrInvalidTerm  = errors.New("invalid search term")
	ErrInvalidLimit = errors.New("invalid limit")
	ErrStore        = errors.New("failed to load suggestions")
)

// SuggestionService sits between the handlers and the store.
//
// Responsibilities:
//   - Load names from the store and normalise them (trim, dedupe, sort)
//   - Cache the normalised list and its index for cacheTTL
//   - Validate and answer filtered queries
type SuggestionService struct {
	store     store.Store
	validator *validator.Validate
	metrics   *metrics.Metrics
	logger    *logger.Logger
	cacheTTL  time.Duration
	now       func() time.Time

	mu     sync.Mutex
	cached *snapshot
}

// snapshot is one normalised load of the store
type snapshot struct {
	names    models.SuggestionList
	index    *suggest.Index
	loadedAt time.Time
}

// NewSuggestionService creates a new suggestion service.
// m and log may be nil. A cacheTTL of zero reloads the store on every call.
func NewSuggestionService(store store.Store, m *metrics.Metrics, log *logger.Logger, cacheTTL time.Duration) *SuggestionService {
	if log == nil {
		log = logger.NewDefault()
	}
	return &SuggestionService{
		store:     store,
		validator: validator.New(),
		metrics:   m,
		logger:    log.WithComponent("SuggestionService"),
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}
}

// List returns the full suggestion list: distinct, trimmed, non-empty names
// sorted case-insensitively.
func (s *SuggestionService) List(ctx context.Context) (models.SuggestionList, error) {
	snap, err := s.load(ctx)
	if err != nil {
		s.countRequest("list", "error")
		return nil, err
	}

	s.countRequest("list", "success")

	list := make(models.SuggestionList, len(snap.names))
	copy(list, snap.names)
	return list, nil
}

// Suggest returns the names matching term, at most limit of them (0 = all).
// An empty term behaves like List.
func (s *SuggestionService) Suggest(ctx context.Context, term string, limit int) (models.SuggestionList, error) {
	if err := s.validator.Var(term, fmt.Sprintf("max=%d", MaxTermLength)); err != nil {
		s.logger.Warn().Int("length", utf8.RuneCountInString(term)).Msg("Search term too long")
		s.countError("validation")
		return nil, fmt.Errorf("%w: at most %d characters", ErrInvalidTerm, MaxTermLength)
	}
	if err := s.validator.Var(limit, fmt.Sprintf("min=0,max=%d", MaxLimit)); err != nil {
		s.countError("validation")
		return nil, fmt.Errorf("%w: must be between 0 and %d", ErrInvalidLimit, MaxLimit)
	}

	snap, err := s.load(ctx)
	if err != nil {
		s.countRequest("filter", "error")
		return nil, err
	}

	matches := models.SuggestionList(snap.index.Match(term))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	s.logger.Debug().
		Str("term", term).
		Int("matches", len(matches)).
		Msg("Suggestions filtered")
	s.countRequest("filter", "success")

	return matches, nil
}

// Invalidate drops the cached list so the next call reloads the store
func (s *SuggestionService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// Close closes the underlying store
func (s *SuggestionService) Close() error {
	return s.store.Close()
}

// load returns the cached snapshot or reloads it from the store.
// The lock is held across the store call so concurrent misses load once.
func (s *SuggestionService) load(ctx context.Context) (*snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.cacheTTL > 0 && s.now().Sub(s.cached.loadedAt) < s.cacheTTL {
		s.countCache("hit")
		return s.cached, nil
	}
	s.countCache("miss")

	start := time.Now()
	raw, err := s.store.ListNames(ctx)
	s.observeQuery(start, err)
	if err != nil {
		s.logger.Error().Err(err).Msg("Store error while loading suggestions")
		s.countError("store_error")
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	names := Normalize(raw)
	snap := &snapshot{
		names:    names,
		index:    suggest.NewIndex(names),
		loadedAt: s.now(),
	}
	s.cached = snap

	s.logger.Info().Int("names", len(names)).Msg("Suggestion list loaded")
	if s.metrics != nil {
		s.metrics.SuggestionListSize.Set(float64(len(names)))
	}

	return snap, nil
}

// Normalize trims names, drops blanks and duplicates, and sorts the rest
// case-insensitively (ties broken by byte order).
func Normalize(raw []string) models.SuggestionList {
	seen := make(map[string]struct{}, len(raw))
	names := make(models.SuggestionList, 0, len(raw))
	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		a, b := strings.ToLower(names[i]), strings.ToLower(names[j])
		if a != b {
			return a < b
		}
		return names[i] < names[j]
	})

	return names
}

func (s *SuggestionService) countRequest(kind, result string) {
	if s.metrics != nil {
		s.metrics.SuggestionRequestsTotal.WithLabelValues(kind, result).Inc()
	}
}

func (s *SuggestionService) countError(errorType string) {
	if s.metrics != nil {
		s.metrics.SuggestionErrors.WithLabelValues(errorType).Inc()
	}
}

func (s *SuggestionService) countCache(result string) {
	if s.metrics != nil {
		s.metrics.DatastoreCacheHits.WithLabelValues(result).Inc()
	}
}

func (s *SuggestionService) observeQuery(start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	s.metrics.DatastoreQueriesTotal.WithLabelValues("list_names", status).Inc()
	s.metrics.DatastoreQueryDuration.WithLabelValues("list_names").Observe(time.Since(start).Seconds())
}
