package httpclient

import (
	"errors"
	"fmt"
)

// APIError is returned for every status other than 200 and 201.
// No distinction is made between 4xx and 5xx; callers inspect StatusCode.
type APIError struct {
	StatusCode int       // HTTP status code
	Reason     string    // reason phrase from the status line
	Response   *Response // the complete buffered response
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s. Sauce status not OK", e.StatusCode, e.Reason)
}

// DecodeError is returned when a successful response does not carry valid JSON.
type DecodeError struct {
	Response *Response
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode response body (status %d): %v", e.Response.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError is returned when no status was obtained: DNS, TLS, connection
// resets, timeouts and cancellation.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: request failed: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAPIError reports whether err is an *APIError, optionally with one of the given statuses.
func IsAPIError(err error, statuses ...int) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if apiErr.StatusCode == s {
			return true
		}
	}
	return false
}
