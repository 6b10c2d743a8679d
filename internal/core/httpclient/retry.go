package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"coupon-report/internal/core/logger"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// maxBackoff caps a single wait between attempts.
const maxBackoff = 2 * time.Minute

// retryableStatuses are answered with another attempt while the budget lasts.
var retryableStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// RetryPolicy bounds how a request is retried.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, the first one included.
	MaxAttempts int
	// Backoff is the first wait; it doubles after every failed attempt.
	Backoff time.Duration
	// AttemptTimeout bounds each attempt separately. Zero disables it.
	AttemptTimeout time.Duration
}

// RetryRoundTripper re-issues requests that fail with a transport error or a retryable status.
// When the budget runs out on a retryable status the last response is returned as is,
// so callers still see the status code and body.
type RetryRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute each attempt.
	Proxied http.RoundTripper
	policy  RetryPolicy
}

// NewRetryRoundTripper wraps next with the given policy.
func NewRetryRoundTripper(next http.RoundTripper, policy RetryPolicy) *RetryRoundTripper {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.Backoff <= 0 {
		policy.Backoff = time.Millisecond
	}
	return &RetryRoundTripper{Proxied: next, policy: policy}
}

// RoundTrip executes the request, retrying per the policy.
func (rt *RetryRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	backoff := retry.NewExponential(rt.policy.Backoff)
	backoff = retry.WithCappedDuration(maxBackoff, backoff)
	backoff = retry.WithMaxRetries(uint64(rt.policy.MaxAttempts-1), backoff)

	var (
		resp    *http.Response
		attempt int
	)

	err := retry.Do(req.Context(), backoff, func(ctx context.Context) error {
		attempt++

		r, err := rt.send(req, attempt)
		if err != nil {
			if req.Context().Err() != nil {
				return err
			}
			logger.Get().Warn("HTTP attempt failed",
				zap.String("url", redactedURL(req)),
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", rt.policy.MaxAttempts),
				zap.Error(err),
			)
			return retry.RetryableError(err)
		}

		if retryableStatuses[r.StatusCode] && attempt < rt.policy.MaxAttempts {
			_, _ = io.Copy(io.Discard, r.Body)
			r.Body.Close()
			logger.Get().Warn("HTTP attempt returned retryable status",
				zap.String("url", redactedURL(req)),
				zap.Int("status_code", r.StatusCode),
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", rt.policy.MaxAttempts),
			)
			return retry.RetryableError(fmt.Errorf("retryable status: %d", r.StatusCode))
		}

		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// send performs one attempt under its own timeout. The timeout stays armed until the body is closed.
func (rt *RetryRoundTripper) send(req *http.Request, attempt int) (*http.Response, error) {
	ctx, cancel := req.Context(), context.CancelFunc(func() {})
	if rt.policy.AttemptTimeout > 0 {
		ctx, cancel = context.WithTimeout(req.Context(), rt.policy.AttemptTimeout)
	}

	r := req.Clone(ctx)
	if attempt > 1 && req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to rewind request body: %w", err)
		}
		r.Body = body
	}

	resp, err := rt.Proxied.RoundTrip(r)
	if err != nil {
		cancel()
		return nil, err
	}

	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// cancelOnClose releases the attempt context once the caller is done with the body.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
