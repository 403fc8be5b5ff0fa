package upstream

import (
	"net/http"
	"time"
)

// defaultHTTPClient is the shared client used when a caller does not inject
// its own. Timeouts keep a stuck upstream from pinning request goroutines.
var defaultHTTPClient = &http.Client{
	Timeout: 15 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:    10,
		IdleConnTimeout: 30 * time.Second,
	},
}

// orDefault returns c, or the shared default client when c is nil.
func orDefault(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	return defaultHTTPClient
}
