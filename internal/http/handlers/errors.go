// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// Codes are lowercase snake_case and stable: clients branch on them
// programmatically, while the accompanying message is for humans. Generic
// codes mirror common HTTP status semantics; domain-specific ones cover
// failures a status alone cannot convey.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"

	// Domain-specific:

	// ErrCodeMalformedMessage marks a message in the upstream batch that is
	// missing a required field; the whole request fails with 400.
	ErrCodeMalformedMessage = "malformed_message"

	// ErrCodeUpstreamUnavailable marks any failure talking to the messages
	// or reports service; the request fails with 503.
	ErrCodeUpstreamUnavailable = "upstream_unavailable"
)
