package retry

import (
	"errors"
	"fmt"
	"net"
	"syscall"
)

// HTTPError is an error carrying an HTTP status code from a provider API.
type HTTPError struct {
	Status int
	Msg    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Msg)
	}
	return fmt.Sprintf("http %d", e.Status)
}

// Error wraps an error with operation context and an explicit retryability
// flag, for failures the status- and transport-based rules can't classify.
type Error struct {
	Op        string // operation that failed ("complete", "embed", ...)
	Err       error  // underlying error
	Retryable bool   // whether the error is likely transient
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a flagged retry error.
func NewError(op string, err error, retryable bool) *Error {
	return &Error{Op: op, Err: err, Retryable: retryable}
}

// IsRetryable reports whether an error is likely transient and worth
// retrying. Rules are checked in order; the first match wins:
//
//  1. HTTP status 429 (rate limited)
//  2. HTTP status in [500, 600)
//  3. transport faults: connection reset, timeout, DNS not-found,
//     connection refused
//  4. an *Error carrying an explicit Retryable flag
//
// Anything else is terminal, including all 4xx statuses other than 429.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Status == 429 {
			return true
		}
		if httpErr.Status >= 500 && httpErr.Status < 600 {
			return true
		}
	}

	if isTransportFault(err) {
		return true
	}

	var flagged *Error
	if errors.As(err, &flagged) && flagged.Retryable {
		return true
	}

	return false
}

func isTransportFault(err error) bool {
	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}
