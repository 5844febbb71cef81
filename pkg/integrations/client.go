package integrations

import (
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	errs "github.com/matzehuels/modrinth-go/pkg/errors"
	"github.com/matzehuels/modrinth-go/pkg/observability"
)

// Config configures a [Client].
type Config struct {
	// BaseURL is the absolute http(s) URL every request path is resolved against.
	BaseURL string

	// UserAgent is sent on every request. Required.
	UserAgent string

	// Headers are applied to every request (e.g. Authorization).
	// User-Agent is always taken from UserAgent.
	Headers map[string]string

	// HTTP sends requests. Defaults to [NewHTTPClient].
	HTTP Doer

	// Logger receives request and response debug logs. Defaults to a discard logger.
	Logger *log.Logger

	// Hooks receives request lifecycle events. Nil means the global
	// [observability.HTTP] hooks, looked up on every call.
	Hooks observability.HTTPHooks

	// RateLimits records rate-limit headers. Defaults to a new tracker.
	// Several clients may share one tracker.
	RateLimits *RateLimitTracker
}

// Client provides shared HTTP functionality for API clients.
// It builds requests, records rate-limit headers, and classifies responses.
// A Client is safe for concurrent use.
type Client struct {
	http      Doer
	base      *url.URL
	userAgent string
	headers   map[string]string
	limits    *RateLimitTracker
	logger    *log.Logger
	hooks     observability.HTTPHooks
}

// NewClient creates a Client from cfg.
func NewClient(cfg Config) (*Client, error) {
	if err := errs.ValidateURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid base URL")
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	if strings.TrimSpace(cfg.UserAgent) == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "user agent is required")
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	c := &Client{
		http:      cfg.HTTP,
		base:      base,
		userAgent: cfg.UserAgent,
		headers:   headers,
		limits:    cfg.RateLimits,
		logger:    cfg.Logger,
		hooks:     cfg.Hooks,
	}
	if c.http == nil {
		c.http = NewHTTPClient()
	}
	if c.limits == nil {
		c.limits = NewRateLimitTracker()
	}
	if c.logger == nil {
		c.logger = discardLogger()
	}
	return c, nil
}

// BaseURL returns the URL request paths are resolved against.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// RateLimits returns the tracker updated by every response this client receives.
func (c *Client) RateLimits() *RateLimitTracker {
	return c.limits
}

// Fetch sends r and decodes a successful response into a new T.
// On any error the zero T is returned; partially decoded data never escapes.
func Fetch[T any](ctx context.Context, c *Client, r Request) (T, error) {
	var v T
	if err := c.Do(ctx, r, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Do sends r and resolves the response into v.
//
// Rate-limit headers are recorded for every received response before its
// status is classified, so failed responses still update the tracker.
// A call that never receives a response returns a TRANSPORT error and leaves
// the tracker untouched.
func (c *Client) Do(ctx context.Context, r Request, v any) error {
	logger := loggerFromContext(ctx, c.logger)
	hooks := c.hookSet()
	requestID := uuid.NewString()

	req, err := c.build(ctx, r)
	if err != nil {
		err = errs.Wrap(errs.ErrCodeInvalidInput, err, "build request")
		hooks.OnError(ctx, r.method(), r.Endpoint, err)
		return err
	}

	logger.Debug("request", "endpoint", r.Endpoint, "method", req.Method, "url", req.URL.String(), "request_id", requestID)
	hooks.OnRequest(ctx, req.Method, r.Endpoint)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		err = errs.Transport(err)
		logger.Warn("request failed", "endpoint", r.Endpoint, "request_id", requestID, "err", err)
		hooks.OnError(ctx, req.Method, r.Endpoint, err)
		return err
	}
	defer resp.Body.Close()

	if rl, ok := c.limits.Observe(resp.Header); ok {
		hooks.OnRateLimit(ctx, rl.Limit, rl.Remaining, rl.Reset)
	}

	body, readErr := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	hooks.OnResponse(ctx, req.Method, r.Endpoint, resp.StatusCode, elapsed)
	if readErr != nil {
		err = errs.Transport(readErr)
		logger.Warn("read response failed", "endpoint", r.Endpoint, "request_id", requestID, "status", resp.StatusCode, "err", err)
		hooks.OnError(ctx, req.Method, r.Endpoint, err)
		return err
	}

	remaining := -1
	if rl, ok := c.limits.Current(); ok {
		remaining = rl.Remaining
	}
	logger.Debug("response", "endpoint", r.Endpoint, "request_id", requestID, "status", resp.StatusCode, "duration", elapsed, "remaining", remaining)

	if err := Resolve(resp.StatusCode, body, v); err != nil {
		logger.Debug("request error", "endpoint", r.Endpoint, "request_id", requestID, "code", errs.GetCode(err), "err", err)
		hooks.OnError(ctx, req.Method, r.Endpoint, err)
		return err
	}
	return nil
}

func (c *Client) hookSet() observability.HTTPHooks {
	if c.hooks != nil {
		return c.hooks
	}
	return observability.HTTP()
}
