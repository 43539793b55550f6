package errs

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// Local preconditions. They short-circuit before any network call.
var (
	ErrUnauthenticated = errors.New("please log in first")
	ErrForbidden       = errors.New("this action is not available for your role")
	ErrMissingISBN     = errors.New("missing ISBN")
	ErrMissingBookID   = errors.New("missing book id for borrow")
	ErrMissingReturnID = errors.New("missing book id for return")
	ErrMissingBook     = errors.New("missing book")
	ErrNoActiveLoan    = errors.New("no active borrow record found for this book")
	ErrNoLoanID        = errors.New("borrow record id not found")
	ErrViewClosed      = errors.New("view closed")
	ErrRequiredFields  = errors.New("please fill in all required fields")
)

// APIError is a response from the remote API with a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status code %d", e.Status)
}

func (e *APIError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// TransportError is a failure to get any response at all.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the error should count against a circuit breaker.
func Retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	var tErr *TransportError
	return errors.As(err, &tErr)
}

// Message picks the text shown to the user: the server's own message first,
// then the transport message, then fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	var tErr *TransportError
	if errors.As(err, &tErr) {
		if msg := strings.TrimSpace(tErr.Err.Error()); msg != "" {
			return msg
		}
		return fallback
	}
	if msg := strings.TrimSpace(errors.Cause(err).Error()); msg != "" {
		return msg
	}
	return fallback
}
