// Package upstream implements the HTTP collaborators of the usage core: the
// messages batch fetch and the per-report cost lookup. It owns everything the
// core treats as external: network I/O, JSON decoding, status-code mapping,
// and the bounded report cache.
//
// Errors form a small closed set of sentinels so callers can branch with
// errors.Is instead of inspecting messages. Only ErrReportNotFound is a
// normal signal (it triggers local-cost fallback in the resolver); the rest
// are fatal for the request that observed them.
package upstream

import "errors"

var (
	// ErrReportNotFound signals a 404 from the reports endpoint. Not a
	// failure: the resolver falls back to the locally computed cost.
	ErrReportNotFound = errors.New("report not found")

	// ErrAccessDenied signals a 403 from the reports endpoint.
	ErrAccessDenied = errors.New("report access denied")

	// ErrServiceUnavailable signals a 5xx from the reports endpoint.
	ErrServiceUnavailable = errors.New("reports service unavailable")

	// ErrUnexpectedStatus signals any other non-200 status from the
	// reports endpoint.
	ErrUnexpectedStatus = errors.New("unexpected reports status")

	// ErrFetchFailure signals a transport or JSON decode failure talking
	// to either upstream endpoint.
	ErrFetchFailure = errors.New("upstream fetch failed")
)
