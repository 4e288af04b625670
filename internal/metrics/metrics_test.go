package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestNewWithRegistry_Registers tests that every collector is registered
func TestNewWithRegistry_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	m.HTTPRequestsTotal.WithLabelValues("GET", "/_autocomplete", "200").Inc()
	m.SuggestionRequestsTotal.WithLabelValues("list", "success").Inc()
	m.SuggestionErrors.WithLabelValues("store_error").Inc()
	m.DatastoreCacheHits.WithLabelValues("hit").Inc()
	m.DatastoreQueriesTotal.WithLabelValues("list_names", "success").Inc()
	m.SuggestionListSize.Set(3)

	count, err := testutil.GatherAndCount(reg)
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	if count != 6 {
		t.Errorf("expected 6 metric series, got %d", count)
	}

	if got := testutil.ToFloat64(m.SuggestionListSize); got != 3 {
		t.Errorf("expected list size 3, got %v", got)
	}
}

// TestNewWithRegistry_Independent tests that separate registries do not clash
func TestNewWithRegistry_Independent(t *testing.T) {
	first := NewWithRegistry(prometheus.NewRegistry())
	second := NewWithRegistry(prometheus.NewRegistry())

	first.SuggestionRequestsTotal.WithLabelValues("list", "success").Inc()

	if got := testutil.ToFloat64(second.SuggestionRequestsTotal.WithLabelValues("list", "success")); got != 0 {
		t.Errorf("expected second collector untouched, got %v", got)
	}
}
