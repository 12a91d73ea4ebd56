// Package httpretry wraps an HTTP client with bounded retries for
// transient platform failures.
package httpretry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Doer executes HTTP requests. *http.Client and *Client satisfy it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client retries 429 and 5xx responses and transport errors on a
// backoff.ExponentialBackOff schedule. Context cancellation stops it
// immediately.
type Client struct {
	doer       Doer
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	logger     *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithBackoff overrides the base and maximum backoff delays.
func WithBackoff(base, max time.Duration) Option {
	return func(c *Client) {
		c.baseDelay = base
		c.maxDelay = max
	}
}

// WithLogger sets the logger used for retry notices.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New wraps doer. A nil doer becomes an http.Client with a 30s timeout and
// maxRetries <= 0 means no retries.
func New(doer Doer, maxRetries int, opts ...Option) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	c := &Client{
		doer:       doer,
		maxRetries: maxRetries,
		baseDelay:  500 * time.Millisecond,
		maxDelay:   10 * time.Second,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do executes req. The final attempt's response is returned as-is so the
// caller can classify its status.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	var (
		resp     *http.Response
		attempts int
	)
	operation := func() error {
		if err := req.Context().Err(); err != nil {
			return backoff.Permanent(err)
		}
		if attempts > 0 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return backoff.Permanent(fmt.Errorf("httpretry: reset request body: %w", err))
			}
			req.Body = body
		}
		attempts++

		r, err := c.doer.Do(req)
		if err != nil {
			if req.Context().Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		if retryable(r.StatusCode) && attempts <= c.maxRetries {
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
			return fmt.Errorf("httpretry: retryable status %d", r.StatusCode)
		}
		resp = r
		return nil
	}
	notify := func(err error, wait time.Duration) {
		c.logger.Debug("retrying platform request",
			slog.Int("attempt", attempts),
			slog.String("method", req.Method),
			slog.String("host", req.URL.Host),
			slog.String("path", req.URL.Path),
			slog.Duration("wait", wait),
			slog.Any("error", err))
	}
	if err := backoff.RetryNotify(operation, c.policy(req.Context()), notify); err != nil {
		return nil, err
	}
	return resp, nil
}

// policy is jittered exponential backoff, capped at maxRetries retries
// and bound to ctx.
func (c *Client) policy(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.baseDelay
	exp.MaxInterval = c.maxDelay
	exp.Multiplier = 2
	exp.MaxElapsedTime = 0
	exp.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(c.maxRetries)), ctx)
}

func retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
