package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound is reported when the API answers 404 for a requested
// resource. Service groups translate the "get mine" style lookups into a
// nil result instead; everywhere else the sentinel is observable through
// errors.Is.
var ErrNotFound = errors.New("resource not found")

// ErrorCode classifies an API failure for callers that branch on the
// failure shape rather than the HTTP status. Codes are string-based for
// debuggability and natural JSON serialization.
type ErrorCode string

const (
	// CodeValidation indicates the server rejected the input and returned
	// a structured list of violations.
	CodeValidation ErrorCode = "VALIDATION_FAILED"

	// CodeMessage indicates the server returned a single human-readable
	// message (invalid credentials, conflicts, and similar).
	CodeMessage ErrorCode = "MESSAGE"

	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeUnknown indicates a failure whose body carried no recognizable
	// error shape. Callers fall back to a generic display string.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// APIError is a non-2xx response from the Diversion API. The body is
// decoded according to the error taxonomy: a structured validation error
// ({"errors": [...]}), a single message error ({"message": "..."}), or an
// unrecognized shape, which yields only the status code.
type APIError struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// Code classifies the decoded error shape.
	Code ErrorCode

	// Message is set for single-message errors.
	Message string

	// Errors is set for structured validation errors.
	Errors []string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case len(e.Errors) > 0:
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, strings.Join(e.Errors, "; "))
	case e.Message != "":
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("api error (status %d)", e.StatusCode)
	}
}

// Unwrap lets errors.Is recognize 404 responses as ErrNotFound.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// Messages returns the human-readable strings carried by the error, in
// display order. Structured validation errors win over a single message.
// The result is nil for errors with no recognizable body; callers supply
// their own fallback string.
func (e *APIError) Messages() []string {
	if len(e.Errors) > 0 {
		return e.Errors
	}
	if e.Message != "" {
		return []string{e.Message}
	}
	return nil
}

// Message extracts a single display string from err. It returns the API
// error's message (or its first validation error) when one exists, and
// fallback otherwise. Front ends call this at every user-visible action
// so server-provided messages win over generic ones.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msgs := apiErr.Messages(); len(msgs) > 0 {
			return msgs[0]
		}
	}
	return fallback
}

// errorBody is the wire shape of an API error payload.
type errorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// classify maps a decoded error body onto an APIError.
func classify(statusCode int, body errorBody) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    body.Message,
		Errors:     body.Errors,
	}

	switch {
	case len(body.Errors) > 0:
		apiErr.Code = CodeValidation
	case body.Message != "":
		apiErr.Code = CodeMessage
	case statusCode == http.StatusNotFound:
		apiErr.Code = CodeNotFound
	default:
		apiErr.Code = CodeUnknown
	}

	return apiErr
}
