package upstream

import "github.com/prometheus/client_golang/prometheus"

// Outcome and target labels for upstream_requests_total. Kept to a fixed
// vocabulary so cardinality stays bounded.
const (
	targetMessages = "messages"
	targetReports  = "reports"

	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

var (
	// upstreamRequests counts outbound requests by target endpoint and outcome.
	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of upstream HTTP requests by target and outcome.",
		},
		[]string{"target", "outcome"},
	)

	// reportCacheHits counts report lookups answered from the LRU cache.
	reportCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_cache_hits_total",
		Help: "Report lookups served from the in-memory cache.",
	})

	// reportCacheMisses counts report lookups that went to the network.
	reportCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_cache_misses_total",
		Help: "Report lookups that required an upstream request.",
	})
)

func init() {
	prometheus.MustRegister(upstreamRequests, reportCacheHits, reportCacheMisses)
}

// observeRequest records one outbound request outcome.
func observeRequest(target, outcome string) {
	upstreamRequests.WithLabelValues(target, outcome).Inc()
}
