package response

import (
	"fmt"
	"net/http"
)

// ErrorBody is the error payload returned by every endpoint.
// Success payloads are endpoint-specific and live in internal/dto.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Canonical error titles of the public contract
const (
	ErrTenantNotFound    = "Tenant not found or inactive"
	ErrTokenLimit        = "Token limit exceeded"
	ErrMissingPrompt     = "Missing prompt"
	ErrMissingName       = "Missing customer name"
	ErrInvalidJSON       = "Invalid JSON"
	ErrInvalidQuery      = "Invalid query parameters"
	ErrInternal          = "Internal server error"
)

// NewError builds an arbitrary error body
func NewError(title, message string) *ErrorBody {
	return &ErrorBody{Error: title, Message: message}
}

// TenantNotFound is returned when the Host header resolves to no active tenant
func TenantNotFound() *ErrorBody {
	return NewError(ErrTenantNotFound, "Please check your domain configuration")
}

// TokenLimitExceeded is returned when a tenant's quota is exhausted
func TokenLimitExceeded(usage, limit int) *ErrorBody {
	return NewError(ErrTokenLimit, fmt.Sprintf("Tenant has used %d/%d tokens", usage, limit))
}

// MissingPrompt is returned when the chat prompt is absent or blank
func MissingPrompt() *ErrorBody {
	return NewError(ErrMissingPrompt, "Please provide a prompt in the request body")
}

// MissingCustomerName is returned when the customer name is absent or blank
func MissingCustomerName() *ErrorBody {
	return NewError(ErrMissingName, "Customer name is required")
}

// InvalidJSON is returned when the request body cannot be parsed
func InvalidJSON() *ErrorBody {
	return NewError(ErrInvalidJSON, "Please provide valid JSON in the request body")
}

// InvalidQuery is returned for malformed pagination parameters
func InvalidQuery(detail string) *ErrorBody {
	return NewError(ErrInvalidQuery, detail)
}

// Internal is returned for unexpected failures
func Internal(detail string) *ErrorBody {
	return NewError(ErrInternal, detail)
}

// StatusFor maps an error title to its HTTP status code
func StatusFor(title string) int {
	switch title {
	case ErrTenantNotFound:
		return http.StatusNotFound
	case ErrTokenLimit:
		return http.StatusTooManyRequests
	case ErrMissingPrompt, ErrMissingName, ErrInvalidJSON, ErrInvalidQuery:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
