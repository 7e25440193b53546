package fetcher

import (
	"time"

	"resty.dev/v3"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// NewHTTPClient creates the transport shared by every request of a client.
// Requests are sent once; failures are returned to the caller, never retried.
func NewHTTPClient(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().
		SetHeader("Accept", "application/json").
		SetTimeout(timeout).
		SetRetryCount(0)

	return client
}
