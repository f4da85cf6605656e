package items

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrBackendUnreachable marks a transport-level failure: the request
// never produced an HTTP response. Distinct from an application error
// carried in a non-2xx response.
var ErrBackendUnreachable = errors.New("cannot connect to backend")

// APIError is a non-2xx response from the backend, with the message
// the backend supplied (or a fallback derived from the status).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API error: %s", http.StatusText(e.StatusCode))
}
