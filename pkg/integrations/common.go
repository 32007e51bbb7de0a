package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the upstream resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-2xx responses).
	ErrNetwork = errors.New("network error")
)

// StatusError reports a non-2xx response. Message holds the "message"
// field of a JSON error body, if the server sent one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%v: status %d: %s", ErrNetwork, e.Code, e.Message)
	}
	return fmt.Sprintf("%v: status %d", ErrNetwork, e.Code)
}

// Unwrap makes every StatusError match [ErrNetwork].
func (e *StatusError) Unwrap() error { return ErrNetwork }

// NewHTTPClient creates an HTTP client with a standard timeout for upstream requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}
