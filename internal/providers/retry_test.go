package providers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// flakyProvider fails a fixed number of times before succeeding.
type flakyProvider struct {
	failures int
	calls    int
}

func (f *flakyProvider) Chat(_ context.Context, _ ChatRequest) (*ChatResponse, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, &RequestError{Provider: "flaky", Err: errors.New("transient")}
	}
	return &ChatResponse{Content: "ok"}, nil
}

func newFastRetry(inner Provider, maxRetries int) *RetryProvider {
	p := NewRetryProvider(inner, maxRetries)
	p.initialInterval = time.Millisecond
	p.maxInterval = time.Millisecond
	return p
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	inner := &flakyProvider{failures: 2}
	p := newFastRetry(inner, 3)

	resp, err := p.Chat(context.Background(), ChatRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "ok" {
		t.Errorf("content = %q, want ok", resp.Content)
	}
	if inner.calls != 3 {
		t.Errorf("expected 3 calls, got %d", inner.calls)
	}
}

func TestRetryGivesUpAfterBound(t *testing.T) {
	inner := &flakyProvider{failures: 100}
	p := newFastRetry(inner, 2)

	_, err := p.Chat(context.Background(), ChatRequest{})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	// Initial attempt plus two retries.
	if inner.calls != 3 {
		t.Errorf("expected 3 calls, got %d", inner.calls)
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Errorf("error = %v, want RequestError", err)
	}
}

func TestRetryDoesNotRetryCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &cancelledProvider{}
	p := newFastRetry(inner, 5)

	_, err := p.Chat(ctx, ChatRequest{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 call, got %d", inner.calls)
	}
}

type cancelledProvider struct {
	calls int
}

func (c *cancelledProvider) Chat(ctx context.Context, _ ChatRequest) (*ChatResponse, error) {
	c.calls++
	return nil, ctx.Err()
}

// statusProvider always fails with an API error carrying a fixed HTTP status.
type statusProvider struct {
	status int
	calls  int
}

func (s *statusProvider) Chat(_ context.Context, _ ChatRequest) (*ChatResponse, error) {
	s.calls++
	return nil, &RequestError{
		Provider: "status",
		Err:      &openai.APIError{HTTPStatusCode: s.status, Message: http.StatusText(s.status)},
	}
}

func TestRetryDoesNotRetryAuthError(t *testing.T) {
	inner := &statusProvider{status: http.StatusUnauthorized}
	p := newFastRetry(inner, 5)

	_, err := p.Chat(context.Background(), ChatRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) || apiErr.HTTPStatusCode != http.StatusUnauthorized {
		t.Errorf("error = %v, want wrapped 401 APIError", err)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 call for a permanent error, got %d", inner.calls)
	}
}

func TestRetryRetriesRateLimit(t *testing.T) {
	inner := &statusProvider{status: http.StatusTooManyRequests}
	p := newFastRetry(inner, 2)

	_, err := p.Chat(context.Background(), ChatRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	if inner.calls != 3 {
		t.Errorf("expected 3 calls for a rate-limited provider, got %d", inner.calls)
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"bad request", &RequestError{Err: &openai.APIError{HTTPStatusCode: http.StatusBadRequest}}, false},
		{"unauthorized", &RequestError{Err: &openai.APIError{HTTPStatusCode: http.StatusUnauthorized}}, false},
		{"not found", &RequestError{Err: &openai.APIError{HTTPStatusCode: http.StatusNotFound}}, false},
		{"request timeout", &RequestError{Err: &openai.APIError{HTTPStatusCode: http.StatusRequestTimeout}}, true},
		{"rate limited", &RequestError{Err: &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}}, true},
		{"server error", &RequestError{Err: &openai.APIError{HTTPStatusCode: http.StatusInternalServerError}}, true},
		{"overloaded", &RequestError{Err: &openai.APIError{HTTPStatusCode: http.StatusServiceUnavailable}}, true},
		{"http transport error", &RequestError{Err: &openai.RequestError{HTTPStatusCode: http.StatusUnauthorized, Err: errors.New("401")}}, false},
		{"plain network error", &RequestError{Err: errors.New("connection refused")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTransient(tt.err); got != tt.want {
				t.Errorf("isTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
