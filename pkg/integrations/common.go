package integrations

import (
	"net/http"
	"time"
)

const httpTimeout = 10 * time.Second

// Doer sends an HTTP request and returns the response.
// *http.Client satisfies it; tests and callers may substitute their own.
// A non-nil error means no response was received.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient creates an HTTP client with a standard timeout for API requests.
// Connection pooling is left to the default transport and shared across calls.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}
