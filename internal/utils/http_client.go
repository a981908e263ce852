package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithTimeout(10 * time.Second))
//	resp, err := client.R().SetContext(ctx).Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures the underlying resty.Client.
type HTTPClientOption func(*resty.Client)

// WithTimeout bounds every request made by the client. A zero timeout
// leaves the client unbounded.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithBaseURL sets the URL that relative request paths are resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// NewHTTPClient creates a new HTTPClient. Each call returns an independent
// client with its own configuration and connection pool. Retries are
// disabled.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New().SetRetryCount(0)
	for _, opt := range opts {
		opt(client)
	}

	return &HTTPClient{Client: client}
}
