package github

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v66/github"
)

// ErrorType represents different categories of GitHub API errors
type ErrorType string

const (
	ErrorTypeAuth       ErrorType = "authentication"
	ErrorTypePermission ErrorType = "permission"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeRateLimit  ErrorType = "rate_limit"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// APIError represents a structured error from GitHub operations
type APIError struct {
	Type     ErrorType `json:"type"`
	Message  string    `json:"message"`
	Cause    error     `json:"-"`
	Resource string    `json:"resource,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Resource, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *APIError) Unwrap() error {
	return e.Cause
}

// WrapAPIError wraps a GitHub API error into our structured error type
func WrapAPIError(err error, resource string) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Resource == "" {
			apiErr.Resource = resource
		}
		return apiErr
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		return parseErrorResponse(respErr, resource)
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &APIError{
			Type:     ErrorTypeRateLimit,
			Message:  fmt.Sprintf("rate limit exceeded, resets at %v", rateErr.Rate.Reset.Time),
			Cause:    err,
			Resource: resource,
		}
	}

	if isNetworkError(err) {
		return &APIError{
			Type:     ErrorTypeNetwork,
			Message:  "network error while talking to GitHub",
			Cause:    err,
			Resource: resource,
		}
	}

	return &APIError{
		Type:     ErrorTypeUnknown,
		Message:  err.Error(),
		Cause:    err,
		Resource: resource,
	}
}

// parseErrorResponse classifies GitHub API error responses by status code
func parseErrorResponse(respErr *github.ErrorResponse, resource string) *APIError {
	apiErr := &APIError{
		Resource: resource,
		Cause:    respErr,
	}

	switch respErr.Response.StatusCode {
	case http.StatusUnauthorized:
		apiErr.Type = ErrorTypeAuth
		apiErr.Message = "authentication failed, check GITHUB_PERSONAL_ACCESS_TOKEN"

	case http.StatusForbidden:
		if strings.Contains(respErr.Message, "rate limit") {
			apiErr.Type = ErrorTypeRateLimit
			apiErr.Message = "GitHub API rate limit exceeded"
		} else {
			apiErr.Type = ErrorTypePermission
			apiErr.Message = "insufficient permissions, the token needs the repo scope"
		}

	case http.StatusNotFound:
		apiErr.Type = ErrorTypeNotFound
		apiErr.Message = "resource not found, check the repository name and token access"

	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		apiErr.Type = ErrorTypeNetwork
		apiErr.Message = "GitHub API is temporarily unavailable"

	default:
		apiErr.Type = ErrorTypeUnknown
		apiErr.Message = respErr.Message
	}

	return apiErr
}

// isNetworkError checks if an error is a network-related error
func isNetworkError(err error) bool {
	errStr := strings.ToLower(err.Error())
	networkKeywords := []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no such host",
		"timeout",
		"dial tcp",
	}

	for _, keyword := range networkKeywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

// Domain-invariant errors reported by the reconciler. Every open issue
// of the target repository must carry exactly one label that is a known
// distro name.
var (
	ErrNoDistroLabel        = errors.New("issue has no distro label")
	ErrAmbiguousDistroLabel = errors.New("issue has more than one distro label")
)

// DistroLabelError reports a distro-label invariant violation on a
// specific issue. It wraps one of the sentinel errors above.
type DistroLabelError struct {
	Issue   Issue
	Matches []string
	Err     error
}

// Error implements the error interface
func (e *DistroLabelError) Error() string {
	if len(e.Matches) > 0 {
		return fmt.Sprintf("issue #%d %q: %v (matched: %s)",
			e.Issue.Number, e.Issue.Title, e.Err, strings.Join(e.Matches, ", "))
	}
	return fmt.Sprintf("issue #%d %q: %v (labels: %s)",
		e.Issue.Number, e.Issue.Title, e.Err, strings.Join(e.Issue.Labels, ", "))
}

// Unwrap returns the sentinel invariant error
func (e *DistroLabelError) Unwrap() error {
	return e.Err
}
