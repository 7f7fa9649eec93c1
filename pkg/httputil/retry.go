package httputil

import (
	"context"
	"errors"
	"time"
)

// Retry policy for the PyPI endpoints. An outage longer than a couple of
// seconds is better reported to the user than waited out, so the budget is
// deliberately small.
const retryAttempts = 3

// retryDelay is the initial backoff. It is a variable only so tests can
// shrink it.
var retryDelay = 500 * time.Millisecond

// RetryableError marks an error as transient. Wrap timeouts and 5xx
// responses in it so [Retry] tries again; anything else fails fast.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn, retrying failures wrapped in [RetryableError] with a
// doubling delay between attempts. It returns nil on the first success,
// non-retryable errors immediately, the last error once the attempt budget
// is spent, or ctx.Err() if the context ends while waiting.
func Retry(ctx context.Context, fn func() error) error {
	delay := retryDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if attempt == retryAttempts || !errors.As(err, new(*RetryableError)) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
}
