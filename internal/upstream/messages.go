package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/orbital-copilot/usage-api/internal/domain"
)

// MessagesClient fetches the current billing period's message batch from the
// upstream messages endpoint.
type MessagesClient struct {
	url    string
	client *http.Client
	log    zerolog.Logger
}

// NewMessagesClient builds a client for the given messages URL. A nil
// httpClient selects the shared default with timeouts.
func NewMessagesClient(url string, httpClient *http.Client, log zerolog.Logger) *MessagesClient {
	return &MessagesClient{
		url:    url,
		client: orDefault(httpClient),
		log:    log,
	}
}

// messagesEnvelope is the wire shape of the messages endpoint.
type messagesEnvelope struct {
	Messages []domain.Message `json:"messages"`
}

// Fetch returns the message batch for the current period. Any transport
// error, non-200 status, or JSON decode failure maps to ErrFetchFailure;
// there is no partial result.
func (c *MessagesClient) Fetch(ctx context.Context) ([]domain.Message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build messages request: %v", ErrFetchFailure, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		observeRequest(targetMessages, outcomeError)
		c.log.Error().Err(err).Str("url", c.url).Msg("messages fetch failed")
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		observeRequest(targetMessages, outcomeError)
		c.log.Error().Int("status", resp.StatusCode).Str("url", c.url).Msg("messages fetch returned non-200")
		return nil, fmt.Errorf("%w: messages endpoint returned HTTP %d", ErrFetchFailure, resp.StatusCode)
	}

	var env messagesEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		observeRequest(targetMessages, outcomeError)
		c.log.Error().Err(err).Msg("messages response is not valid JSON")
		return nil, fmt.Errorf("%w: decode messages: %v", ErrFetchFailure, err)
	}

	observeRequest(targetMessages, outcomeOK)
	c.log.Info().Int("count", len(env.Messages)).Msg("fetched messages")
	return env.Messages, nil
}
