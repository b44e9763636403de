package jejak

import (
	"errors"
	"fmt"
)

// Sentinel errors for failures detected before any network activity.
var (
	// ErrNoCustomerProvider is returned by the *Current operations when the
	// client was built without WithCustomerProvider.
	ErrNoCustomerProvider = errors.New("jejak: no customer provider configured")

	// ErrEventNameEmpty is returned by Track when the event name is empty.
	ErrEventNameEmpty = errors.New("jejak: event name must not be empty")
)

// APIError is returned when the tracking API answers with a status other
// than 200 OK. It carries the exact status code so callers can decide how
// to react; the client itself never retries.
type APIError struct {
	StatusCode int
	Method     string
	Endpoint   string
}

// Error implements error interface.
func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("jejak: %s %s: unexpected status %d", e.Method, e.Endpoint, e.StatusCode)
}

// Is matches any *APIError, or one with the same status code when the
// target carries a non-zero code.
func (e *APIError) Is(target error) bool {
	if e == nil {
		return false
	}
	targetErr, ok := target.(*APIError)
	if !ok {
		return false
	}
	return targetErr.StatusCode == 0 || targetErr.StatusCode == e.StatusCode
}

// IsStatus reports whether err is an *APIError carrying the given HTTP
// status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}
	return false
}
