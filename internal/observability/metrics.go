package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Provider call outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	// ProviderRequestsTotal counts outbound provider calls by provider name
	// and outcome. Transport failures and non-2xx responses both count as
	// "error" even though callers observe them as "not found".
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worldinfo_provider_requests_total",
			Help: "Outbound provider requests by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)

	// CacheRequestsTotal counts read-through cache lookups by lookup kind
	// (weather, currency, news) and outcome (hit, miss).
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worldinfo_cache_requests_total",
			Help: "Read-through cache lookups by kind and outcome.",
		},
		[]string{"lookup", "outcome"},
	)

	// NewsImportRunsTotal counts completed news import runs by outcome.
	NewsImportRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worldinfo_news_import_runs_total",
			Help: "News import job runs by outcome.",
		},
		[]string{"outcome"},
	)

	// NewsItemsImportedTotal counts news rows persisted by the import job.
	NewsItemsImportedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "worldinfo_news_items_imported_total",
			Help: "News items persisted by the import job.",
		},
	)
)
