package docapi

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
	"github.com/rcashie/fb-web-import/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RetryWaitMin is the initial delay between retries.
	RetryWaitMin = 500 * time.Millisecond

	// RetryWaitMax caps the delay between retries.
	RetryWaitMax = 5 * time.Second

	apiPrefix   = "/doc-api/v1"
	userAgent   = "fbimport"
	maxBodySize = 10 << 20
)

// Ensure Client implements the interfaces.
var (
	_ driven.DocumentReader = (*Client)(nil)
	_ driven.ProposalWriter = (*Client)(nil)
)

// Client talks to the document store HTTP API.
type Client struct {
	settings    domain.APISettings
	http        *retryablehttp.Client
	rateLimiter *RateLimiter
}

// NewClient creates a document store client.
// Unset rate and retry limits fall back to their defaults.
func NewClient(settings domain.APISettings) *Client {
	settings = settings.Normalized()
	c := &Client{
		settings:    settings,
		rateLimiter: NewRateLimiter(settings.RequestsPerSecond),
	}

	retryClient := retryablehttp.NewClient()
	retryClient.Logger = log.New(io.Discard, "", 0)
	retryClient.RetryMax = settings.MaxRetries
	retryClient.RetryWaitMin = RetryWaitMin
	retryClient.RetryWaitMax = RetryWaitMax
	retryClient.HTTPClient.Timeout = DefaultTimeout
	retryClient.CheckRetry = c.checkRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			logger.Debug("Retrying %s %s (attempt %d)", req.Method, req.URL.Path, attempt+1)
		}
		c.throttle(req.Context())
	}
	c.http = retryClient

	return c
}

// BaseURL returns the normalised document store root.
func (c *Client) BaseURL() string {
	return c.settings.BaseURL
}

type noRetryKey struct{}

// withoutRetry marks requests sent with ctx as single attempt.
// Creating a proposal is not idempotent: a create that reached the store
// but failed on the way back must not be sent again.
func withoutRetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, noRetryKey{}, true)
}

func retryDisabled(ctx context.Context) bool {
	v, _ := ctx.Value(noRetryKey{}).(bool)
	return v
}

// checkRetry records 429 responses with the rate limiter before deferring
// to the default retry policy.
func (c *Client) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		c.rateLimiter.RecordRateLimitError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}
	if retryDisabled(ctx) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// throttle blocks until the rate limiter admits one attempt. It runs before
// every attempt, retries included, so 429 backoff also delays retries.
// A cancelled ctx returns early and the attempt then fails on ctx.
func (c *Client) throttle(ctx context.Context) {
	if c.rateLimiter.Allow() {
		return
	}
	logger.Debug("Waiting for rate limit")
	if err := c.rateLimiter.Wait(ctx); err != nil {
		logger.Debug("Rate limit wait: %v", err)
	}
}

// response is a fully read HTTP response.
type response struct {
	status int
	body   []byte
	url    string
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// do sends one request and reads the whole response body.
// Session cookies are attached when authenticated is true. Every attempt is
// rate limited by the request hook.
func (c *Client) do(ctx context.Context, method, path string, body []byte, authenticated bool) (*response, error) {
	url := c.settings.BaseURL + path
	var rawBody any
	if body != nil {
		rawBody = body
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, rawBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set("Cookie", c.settings.Cookie())
	}

	logger.Debug("%s %s", method, path)
	// The passthrough error handler hands back the last response together
	// with the retry policy's error once retries are exhausted.
	resp, err := c.http.Do(req)
	if resp == nil {
		if err == nil {
			err = ErrUnexpectedResponse
		}
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return &response{status: resp.StatusCode, body: data, url: url}, nil
}
