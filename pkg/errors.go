package pkg

import (
	"fmt"
	"strings"

	"github.com/LerianStudio/lib-auth-go/constant"
)

// ValidationError records an invalid configuration or construction argument.
type ValidationError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string
	Message    string
	Code       string
	Err        error `json:"err,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s - %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// InternalServerError indicates an unexpected failure with no better classification.
type InternalServerError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e InternalServerError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e InternalServerError) Unwrap() error {
	return e.Err
}

// ValidateInternalError wraps err in an InternalServerError with the generic code, title and message.
func ValidateInternalError(err error, entityType string) error {
	return InternalServerError{
		EntityType: entityType,
		Code:       constant.ErrInternalServer.Error(),
		Title:      "Internal Server Error",
		Message:    "The server encountered an unexpected error. Please try again later or contact support.",
		Err:        err,
	}
}

// ValidateBusinessError maps a sentinel error code to its business error with title and message.
// Unknown errors are returned unchanged.
func ValidateBusinessError(err error, entityType string, args ...any) error {
	errorMap := map[error]error{
		constant.ErrMissingBaseURL: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrMissingBaseURL.Error(),
			Title:      "Missing API base URL",
			Message:    fmt.Sprintf("The auth API base URL is not configured. Please set the %s environment variable.", constant.EnvBaseURL),
		},
		constant.ErrInvalidBaseURL: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidBaseURL.Error(),
			Title:      "Invalid API base URL",
			Message:    fmt.Sprintf("The auth API base URL '%v' is not an absolute http or https URL.", args...),
		},
		constant.ErrInvalidHTTPTimeout: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidHTTPTimeout.Error(),
			Title:      "Invalid HTTP timeout",
			Message:    fmt.Sprintf("The HTTP timeout must be positive, got %v.", args...),
		},
		constant.ErrInvalidTokenTTL: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrInvalidTokenTTL.Error(),
			Title:      "Invalid token TTL",
			Message:    fmt.Sprintf("The session token TTL must be positive, got %v.", args...),
		},
		constant.ErrNilTransport: ValidationError{
			EntityType: entityType,
			Code:       constant.ErrNilTransport.Error(),
			Title:      "Missing transport",
			Message:    "The auth client requires a non-nil transport.",
		},
	}

	if mappedError, found := errorMap[err]; found {
		return mappedError
	}

	return err
}
