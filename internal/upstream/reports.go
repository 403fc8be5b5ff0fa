package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/orbital-copilot/usage-api/internal/domain"
)

// DefaultReportCacheSize bounds the report cache when no size is configured.
const DefaultReportCacheSize = 100

// cachedReport is a cache slot. A nil Report records a definitive 404 so a
// missing report is not re-fetched for every message that references it.
// Fatal statuses are never cached; a recovering upstream is observed on the
// next lookup.
type cachedReport struct {
	Report *domain.Report
}

// ReportsClient looks up externally priced reports by id and maps the
// upstream status codes onto the package's error set:
//
//	200   -> Report
//	404   -> ErrReportNotFound
//	403   -> ErrAccessDenied
//	5xx   -> ErrServiceUnavailable
//	other -> ErrUnexpectedStatus
//
// The client owns a bounded LRU cache keyed by report id; the cache lives
// and dies with the client.
type ReportsClient struct {
	baseURL string
	client  *http.Client
	cache   *lru.Cache[string, cachedReport]
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewReportsClient builds a client for the given reports base URL (report
// ids are appended path-style). cacheSize <= 0 selects
// DefaultReportCacheSize. limiter throttles outbound lookups and may be nil.
func NewReportsClient(baseURL string, httpClient *http.Client, cacheSize int, limiter *rate.Limiter, log zerolog.Logger) (*ReportsClient, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultReportCacheSize
	}
	cache, err := lru.New[string, cachedReport](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("report cache: %w", err)
	}
	return &ReportsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  orDefault(httpClient),
		cache:   cache,
		limiter: limiter,
		log:     log,
	}, nil
}

// Fetch returns the report for id, ErrReportNotFound when the upstream says
// it does not exist, or one of the fatal sentinels. Successful and not-found
// outcomes are served from cache on repeat lookups.
func (c *ReportsClient) Fetch(ctx context.Context, id string) (*domain.Report, error) {
	if slot, ok := c.cache.Get(id); ok {
		reportCacheHits.Inc()
		if slot.Report == nil {
			return nil, ErrReportNotFound
		}
		return slot.Report, nil
	}
	reportCacheMisses.Inc()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
		}
	}

	report, err := c.fetchRemote(ctx, id)
	switch {
	case err == nil:
		c.cache.Add(id, cachedReport{Report: report})
		c.log.Info().Str("report_id", id).Str("report", report.Name).Msg("report resolved")
		return report, nil
	case errors.Is(err, ErrReportNotFound):
		c.cache.Add(id, cachedReport{})
		c.log.Warn().Str("report_id", id).Msg("report not found")
		return nil, err
	default:
		c.log.Error().Err(err).Str("report_id", id).Msg("report lookup failed")
		return nil, err
	}
}

// fetchRemote performs the actual HTTP lookup and status mapping.
func (c *ReportsClient) fetchRemote(ctx context.Context, id string) (*domain.Report, error) {
	url := c.baseURL + "/" + id
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build report request: %v", ErrFetchFailure, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		observeRequest(targetReports, outcomeError)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var report domain.Report
		if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
			observeRequest(targetReports, outcomeError)
			return nil, fmt.Errorf("%w: decode report %s: %v", ErrFetchFailure, id, err)
		}
		observeRequest(targetReports, outcomeOK)
		return &report, nil
	case resp.StatusCode == http.StatusNotFound:
		observeRequest(targetReports, outcomeNotFound)
		return nil, fmt.Errorf("%w: id %s", ErrReportNotFound, id)
	case resp.StatusCode == http.StatusForbidden:
		observeRequest(targetReports, outcomeError)
		return nil, fmt.Errorf("%w: id %s", ErrAccessDenied, id)
	case resp.StatusCode >= http.StatusInternalServerError:
		observeRequest(targetReports, outcomeError)
		return nil, fmt.Errorf("%w: id %s returned HTTP %d", ErrServiceUnavailable, id, resp.StatusCode)
	default:
		observeRequest(targetReports, outcomeError)
		return nil, fmt.Errorf("%w: id %s returned HTTP %d", ErrUnexpectedStatus, id, resp.StatusCode)
	}
}

// CacheLen reports the number of cached report outcomes. Exposed for tests
// and diagnostics.
func (c *ReportsClient) CacheLen() int {
	return c.cache.Len()
}
