package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Default retry parameters.
const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 100 * time.Millisecond
)

type options struct {
	maxRetries int
	baseDelay  time.Duration
	onRetry    func(attempt int, err error)
}

// Option configures Do.
type Option func(*options)

// WithMaxRetries sets the maximum number of retries after the initial
// attempt, so up to maxRetries+1 calls total. Zero disables retries;
// negative values are treated as zero.
func WithMaxRetries(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxRetries = n
	}
}

// WithBaseDelay sets the delay before the first retry. Each subsequent
// delay doubles.
func WithBaseDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.baseDelay = d
		}
	}
}

// WithOnRetry sets an observer invoked before each backoff sleep. The
// attempt argument is 1 for the first retry. It is never invoked when the
// first call succeeds, when the error is terminal, or after the final
// failed attempt.
func WithOnRetry(fn func(attempt int, err error)) Option {
	return func(o *options) {
		o.onRetry = fn
	}
}

// Do runs fn under bounded exponential backoff.
//
// A success returns immediately. A failure that IsRetryable deems terminal
// propagates on its first occurrence without consuming retry budget. A
// transient failure sleeps baseDelay * 2^attempt and tries again, up to
// maxRetries retries. Exhaustion propagates the last error without a
// trailing sleep or observer call.
//
// Cancelling ctx aborts any pending sleep and returns the context error.
func Do[T any](ctx context.Context, fn func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	o := options{
		maxRetries: DefaultMaxRetries,
		baseDelay:  DefaultBaseDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var result T
	operation := func() error {
		v, err := fn(ctx)
		if err != nil {
			if !IsRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		result = v
		return nil
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = o.baseDelay
	eb.Multiplier = 2
	eb.RandomizationFactor = 0
	// Doubling runs uncapped within the retry budget; the context, not a
	// wall clock, bounds the whole call.
	eb.MaxInterval = 24 * time.Hour
	eb.MaxElapsedTime = 0
	eb.Reset()

	attempt := 0
	notify := func(err error, _ time.Duration) {
		attempt++
		if o.onRetry != nil {
			o.onRetry(attempt, err)
		}
	}

	b := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(o.maxRetries)), ctx)
	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
