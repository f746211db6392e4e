package psa

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// maxErrorDetails bounds how much of an error body is kept in Error.Details.
const maxErrorDetails = 512

// Sentinel errors for use with errors.Is.
var (
	ErrBadRequest   = &Error{StatusCode: http.StatusBadRequest, Message: "malformed request"}
	ErrUnauthorized = &Error{StatusCode: http.StatusUnauthorized, Message: "authentication required"}
	ErrForbidden    = &Error{StatusCode: http.StatusForbidden, Message: "insufficient permissions"}
	ErrNotFound     = &Error{StatusCode: http.StatusNotFound, Message: "resource not found"}
	ErrRateLimited  = &Error{StatusCode: http.StatusTooManyRequests, Message: "rate limit exceeded"}
	ErrServerError  = &Error{StatusCode: http.StatusInternalServerError, Message: "internal server error"}
	ErrUnavailable  = &Error{StatusCode: http.StatusServiceUnavailable, Message: "service unavailable"}

	// ErrInvalidJSON is returned when a response body cannot be parsed as JSON.
	ErrInvalidJSON = errors.New("psa: invalid JSON response")
	// ErrEmptyBody is returned when JSON is expected but the body is empty.
	ErrEmptyBody = fmt.Errorf("%w: empty body", ErrInvalidJSON)
)

// Error represents a non-2xx PSA API response.
type Error struct {
	StatusCode int    // HTTP status code
	Message    string // Human-readable message
	Details    string // Body excerpt returned by the server
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("psa [%d]: %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("psa [%d]: %s", e.StatusCode, e.Message)
}

// Is implements errors.Is for error comparison.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if an error indicates a missing or rejected API key.
// The PSA gateway answers 403 for a bad key, so both codes count.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}

// errorFromStatus creates an Error from an HTTP status.
func errorFromStatus(code int, reason string, body []byte) error {
	if code >= 200 && code < 300 {
		return nil
	}

	details := strings.TrimSpace(string(body))
	if len(details) > maxErrorDetails {
		details = details[:maxErrorDetails] + "..."
	}

	var message string
	switch code {
	case http.StatusBadRequest:
		message = "malformed request"
	case http.StatusUnauthorized:
		message = "authentication required"
	case http.StatusForbidden:
		message = "insufficient permissions"
	case http.StatusNotFound:
		message = "resource not found"
	case http.StatusTooManyRequests:
		message = "rate limit exceeded"
	case http.StatusInternalServerError:
		message = "internal server error"
	case http.StatusServiceUnavailable:
		message = "service unavailable"
	default:
		message = reason
		if message == "" {
			message = "unexpected status"
		}
	}
	return &Error{StatusCode: code, Message: message, Details: details}
}
