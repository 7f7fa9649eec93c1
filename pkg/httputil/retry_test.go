package httputil

import (
	"context"
	"errors"
	"testing"
	"time"
)

func shortDelay(t *testing.T) {
	t.Helper()
	saved := retryDelay
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = saved })
}

func TestRetry_SucceedsAfterTransientFailures(t *testing.T) {
	shortDelay(t)

	calls := 0
	err := Retry(context.Background(), func() error {
		calls++
		if calls < retryAttempts {
			return &RetryableError{Err: errors.New("status 503")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() failed: %v", err)
	}
	if calls != retryAttempts {
		t.Errorf("got %d calls, want %d", calls, retryAttempts)
	}
}

func TestRetry_NonRetryableFailsFast(t *testing.T) {
	permanent := errors.New("status 403")
	calls := 0
	err := Retry(context.Background(), func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Errorf("got error %v, want %v", err, permanent)
	}
	if calls != 1 {
		t.Errorf("got %d calls, want 1", calls)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	shortDelay(t)

	transient := errors.New("connection reset")
	calls := 0
	err := Retry(context.Background(), func() error {
		calls++
		return &RetryableError{Err: transient}
	})
	if !errors.Is(err, transient) {
		t.Errorf("got error %v, want last transient error", err)
	}
	if calls != retryAttempts {
		t.Errorf("got %d calls, want %d", calls, retryAttempts)
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, func() error {
		return &RetryableError{Err: errors.New("status 502")}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want context.Canceled", err)
	}
}
