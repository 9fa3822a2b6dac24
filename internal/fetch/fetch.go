// Package fetch retrieves ad-vendor script sources over HTTP.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultRetryMax = 2
)

// Client fetches script sources with retries on transient failures.
type Client struct {
	http *resty.Client
}

// New creates a fetch client with the given per-request timeout. A zero
// timeout uses the default.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	retry := retryablehttp.NewClient()
	retry.RetryMax = defaultRetryMax
	retry.Logger = nil

	http := resty.NewWithClient(retry.StandardClient())
	http.SetTimeout(timeout)
	http.SetHeader("Accept", "application/javascript, text/javascript;q=0.9, */*;q=0.8")

	return &Client{http: http}
}

// Fetch retrieves the script body at url.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("fetch %s: HTTP %d %s", url, status, resp.Status())
	}
	return resp.String(), nil
}
