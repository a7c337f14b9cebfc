package tasklight

import (
	"errors"
	"fmt"
)

// APIError is returned when the server answers with a non-2xx status. It
// carries enough context to log or display the failure: the endpoint and
// method of the request, the HTTP status code, and the raw response body.
type APIError struct {
	Message    string
	Endpoint   string
	Method     string
	StatusCode int
	Response   string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.Endpoint, e.Message)
}

// TransportError is returned when the request never produced an HTTP
// response: DNS failure, connection refused, timeout. Its status code is
// always zero.
type TransportError struct {
	Endpoint string
	Method   string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: request failed: %v", e.Method, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthenticationError is the APIError subtype for 401 and 403 responses.
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Unwrap() error {
	return &e.APIError
}

// AssigneeAuthenticationError is returned when an assignee operation
// exhausted every authentication header variant and still got rejected.
// It wraps the last attempt's AuthenticationError.
type AssigneeAuthenticationError struct {
	AuthenticationError
}

func (e *AssigneeAuthenticationError) Unwrap() error {
	return &e.AuthenticationError
}

// LabelAuthenticationError is the label-operation counterpart of
// AssigneeAuthenticationError.
type LabelAuthenticationError struct {
	AuthenticationError
}

func (e *LabelAuthenticationError) Unwrap() error {
	return &e.AuthenticationError
}

// newAssigneeAuthenticationError wraps the final cascade error for an
// assignee endpoint, keeping the underlying status, endpoint and body.
func newAssigneeAuthenticationError(last *AuthenticationError) *AssigneeAuthenticationError {
	e := &AssigneeAuthenticationError{AuthenticationError: *last}
	e.Message = "Assignee operation failed due to authentication issue: " + last.Message
	return e
}

// newLabelAuthenticationError wraps the final cascade error for a label
// endpoint.
func newLabelAuthenticationError(last *AuthenticationError) *LabelAuthenticationError {
	e := &LabelAuthenticationError{AuthenticationError: *last}
	e.Message = "Label operation failed due to authentication issue: " + last.Message
	return e
}

// Helper functions to check error types.

// IsAPIError returns true if the error (or anything it wraps) is a non-2xx
// API response.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsTransportError returns true if the error indicates the request never
// reached the server.
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsAuthenticationError returns true if the error is a 401/403 rejection,
// including the specialized assignee and label variants.
func IsAuthenticationError(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAssigneeAuthenticationError returns true if an assignee operation
// failed after exhausting every authentication header variant.
func IsAssigneeAuthenticationError(err error) bool {
	var assigneeErr *AssigneeAuthenticationError
	return errors.As(err, &assigneeErr)
}

// IsLabelAuthenticationError returns true if a label operation failed
// after exhausting every authentication header variant.
func IsLabelAuthenticationError(err error) bool {
	var labelErr *LabelAuthenticationError
	return errors.As(err, &labelErr)
}

// StatusCode extracts the HTTP status code from an error returned by this
// package. It returns 0 for transport errors and for errors that did not
// originate here.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
