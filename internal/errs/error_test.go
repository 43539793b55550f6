package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &APIError{Status: http.StatusNotFound, Message: "Book not found"}, "Book not found"},
		{"server without message", &APIError{Status: http.StatusBadGateway}, "request failed with status code 502"},
		{"transport", &TransportError{Op: "GET /api/books", Err: errors.New("connection refused")}, "connection refused"},
		{"wrapped precondition", errors.Wrap(ErrNoActiveLoan, "return"), "no active borrow record found for this book"},
		{"nil", nil, "Failed to update"},
		{"empty", errors.New(" "), "Failed to update"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Message(tt.err, "Failed to update"))
		})
	}
}

func TestRetryable(t *testing.T) {
	t.Parallel()
	require.True(t, Retryable(&APIError{Status: http.StatusServiceUnavailable}))
	require.False(t, Retryable(&APIError{Status: http.StatusConflict}))
	require.True(t, Retryable(errors.Wrap(&TransportError{Op: "x", Err: errors.New("eof")}, "list")))
	require.False(t, Retryable(ErrMissingISBN))
}
