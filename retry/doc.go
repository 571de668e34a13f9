// Package retry provides transient-error classification and bounded
// exponential-backoff execution.
//
// # Classification
//
// IsRetryable decides whether an error is worth retrying. Rate limits (HTTP
// 429), server errors (5xx), transport faults (connection reset, timeout,
// DNS not-found, connection refused), and errors explicitly flagged
// retryable all qualify. Everything else, including all other 4xx responses,
// is terminal and fails on the first occurrence without consuming retry
// budget.
//
// # Execution
//
//	resp, err := retry.Do(ctx, func(ctx context.Context) (*Response, error) {
//	    return client.Complete(ctx, req)
//	},
//	    retry.WithMaxRetries(3),
//	    retry.WithBaseDelay(100*time.Millisecond),
//	    retry.WithOnRetry(func(attempt int, err error) {
//	        slog.Warn("retrying", "attempt", attempt, "error", err)
//	    }),
//	)
//
// Attempts run strictly in sequence. The delay before attempt n+1 is
// BaseDelay * 2^n. Cancelling the context aborts both pending backoff sleeps
// and the next attempt.
package retry
