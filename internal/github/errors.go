// Package github wraps the GitHub REST API for label retrieval and mutation.
package github

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/go-github/v50/github"
)

// ErrorType classifies GitHub API failures.
type ErrorType int

const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeRateLimit indicates the API rate limit was exceeded.
	ErrorTypeRateLimit
	// ErrorTypeNetworkTimeout indicates a network timeout.
	ErrorTypeNetworkTimeout
	// ErrorTypeAuthentication indicates an authentication failure.
	ErrorTypeAuthentication
	// ErrorTypeNotFound indicates the resource was not found.
	ErrorTypeNotFound
	// ErrorTypeServerError indicates a server-side (5xx) error.
	ErrorTypeServerError
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeRateLimit:
		return "RateLimit"
	case ErrorTypeNetworkTimeout:
		return "NetworkTimeout"
	case ErrorTypeAuthentication:
		return "Authentication"
	case ErrorTypeNotFound:
		return "NotFound"
	case ErrorTypeServerError:
		return "ServerError"
	default:
		return "Unknown"
	}
}

// APIError is a structured GitHub API error.
type APIError struct {
	Type        ErrorType
	StatusCode  int
	Message     string
	RetryAfter  time.Duration
	OriginalErr error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error [%s]: %s", e.Type, e.Message)
}

// Unwrap returns the original error.
func (e *APIError) Unwrap() error {
	return e.OriginalErr
}

// IsRetryable reports whether retrying the operation may succeed.
func (e *APIError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeRateLimit, ErrorTypeNetworkTimeout, ErrorTypeServerError:
		return true
	default:
		return false
	}
}

// classifyError converts an error returned by go-github into an APIError.
// Context cancellation is passed through untouched.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	apiErr := &APIError{
		Type:        ErrorTypeUnknown,
		Message:     err.Error(),
		OriginalErr: err,
	}

	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var respErr *github.ErrorResponse
	var netErr net.Error

	switch {
	case errors.As(err, &rateErr):
		apiErr.Type = ErrorTypeRateLimit
		apiErr.StatusCode = http.StatusForbidden
		apiErr.RetryAfter = time.Until(rateErr.Rate.Reset.Time)
	case errors.As(err, &abuseErr):
		apiErr.Type = ErrorTypeRateLimit
		apiErr.StatusCode = http.StatusForbidden
		if abuseErr.RetryAfter != nil {
			apiErr.RetryAfter = *abuseErr.RetryAfter
		}
	case errors.As(err, &respErr):
		apiErr.StatusCode = respErr.Response.StatusCode
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized:
			apiErr.Type = ErrorTypeAuthentication
		case apiErr.StatusCode == http.StatusNotFound:
			apiErr.Type = ErrorTypeNotFound
		case apiErr.StatusCode >= 500:
			apiErr.Type = ErrorTypeServerError
		}
	case errors.As(err, &netErr) && netErr.Timeout():
		apiErr.Type = ErrorTypeNetworkTimeout
	}

	return apiErr
}

// IsRateLimitError checks if the error is a rate limit error.
func IsRateLimitError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Type == ErrorTypeRateLimit
}

// IsNotFoundError checks if the error is a not found error.
func IsNotFoundError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Type == ErrorTypeNotFound
}

// IsAuthenticationError checks if the error is an authentication error.
func IsAuthenticationError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Type == ErrorTypeAuthentication
}
