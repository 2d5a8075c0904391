package providers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"
)

const defaultMaxRetries = 3

// RetryProvider wraps a Provider with bounded exponential backoff on
// transient failures. Context cancellation and permanent provider errors
// (auth failures, bad requests) are never retried.
type RetryProvider struct {
	inner           Provider
	maxRetries      uint64
	initialInterval time.Duration
	maxInterval     time.Duration
}

func NewRetryProvider(inner Provider, maxRetries int) *RetryProvider {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &RetryProvider{
		inner:           inner,
		maxRetries:      uint64(maxRetries),
		initialInterval: 500 * time.Millisecond,
		maxInterval:     10 * time.Second,
	}
}

func (p *RetryProvider) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var resp *ChatResponse

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.initialInterval
	bo.MaxInterval = p.maxInterval

	attempt := 0
	op := func() error {
		attempt++
		var err error
		resp, err = p.inner.Chat(ctx, req)
		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return backoff.Permanent(err)
		}
		if !isTransient(err) {
			return backoff.Permanent(err)
		}
		slog.Warn("provider request failed, retrying", "attempt", attempt, "err", err)
		return err
	}

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, p.maxRetries), ctx))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// isTransient reports whether a provider failure is worth retrying. API
// errors carrying an HTTP status are transient only for timeouts, rate
// limits, and server errors; errors with no status (transport failures)
// are treated as transient.
func isTransient(err error) bool {
	var oaiAPIErr *openai.APIError
	if errors.As(err, &oaiAPIErr) {
		return retryableStatus(oaiAPIErr.HTTPStatusCode)
	}
	var oaiReqErr *openai.RequestError
	if errors.As(err, &oaiReqErr) {
		return retryableStatus(oaiReqErr.HTTPStatusCode)
	}
	var antErr *anthropic.Error
	if errors.As(err, &antErr) {
		return retryableStatus(antErr.StatusCode)
	}
	return true
}

func retryableStatus(code int) bool {
	switch {
	case code == http.StatusRequestTimeout, code == http.StatusTooManyRequests:
		return true
	case code >= 500:
		return true
	default:
		return false
	}
}
