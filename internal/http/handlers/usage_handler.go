// Usage HTTP handler.
//
// This file exposes the single public endpoint of the service:
//   - GET /usage   (compute credit usage for the current billing period)
//
// The handler is transport-thin: it delegates to the usage service and maps
// the service's tagged errors onto HTTP statuses. A malformed message in the
// upstream batch fails the whole request with 400; any upstream failure
// (messages fetch, report lookup) fails it with 503. There are no partial
// responses.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orbital-copilot/usage-api/internal/domain"
	"github.com/orbital-copilot/usage-api/internal/http/middleware"
	"github.com/orbital-copilot/usage-api/internal/services"
	"github.com/orbital-copilot/usage-api/internal/upstream"
)

// UsageService is the application-layer dependency of the usage handler.
// Satisfied by *services.UsageService.
type UsageService interface {
	Usage(ctx context.Context) ([]domain.UsageRecord, error)
}

// Handlers bundles the HTTP handlers with their injected services.
type Handlers struct {
	Usage UsageService
}

// New constructs the handler set.
func New(usage UsageService) *Handlers {
	return &Handlers{Usage: usage}
}

// UsageResponse is the JSON envelope for the usage report.
type UsageResponse struct {
	Usage []domain.UsageRecord `json:"usage"`
}

// GetUsage godoc
// @ID          getUsage
// @Summary     Current-period credit usage
// @Description Fetches the current billing period's messages and returns one
// @Description usage record per message, with credits taken verbatim from a
// @Description resolved report or computed locally otherwise.
// @Tags        Usage
// @Produce     json
// @Success     200  {object}  handlers.UsageResponse  "Per-message usage records"
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed message in upstream data"
// @Failure     503  {object}  handlers.ErrorResponse  "Upstream service unavailable"
// @Router      /usage [get]
func (h *Handlers) GetUsage(c *gin.Context) {
	ctx := c.Request.Context()

	records, err := h.Usage.Usage(ctx)
	if err != nil {
		h.failUsage(c, err)
		return
	}

	// Empty batches serialize as "usage": [], not null.
	if records == nil {
		records = []domain.UsageRecord{}
	}
	ok(c, http.StatusOK, UsageResponse{Usage: records})
}

// failUsage maps service-layer errors onto the HTTP error envelope.
func (h *Handlers) failUsage(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMalformedMessage):
		fail(c, http.StatusBadRequest, ErrCodeMalformedMessage, err.Error())
	case errors.Is(err, upstream.ErrFetchFailure),
		errors.Is(err, upstream.ErrAccessDenied),
		errors.Is(err, upstream.ErrServiceUnavailable),
		errors.Is(err, upstream.ErrUnexpectedStatus):
		lg := middleware.LoggerFrom(c)
		lg.Error().Err(err).Msg("usage computation failed upstream")
		fail(c, http.StatusServiceUnavailable, ErrCodeUpstreamUnavailable,
			"failed to fetch data from external service")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}
