package constant

import "errors"

// Structured error codes for auth client failures
var (
	ErrMissingBaseURL     = errors.New("AUTH-0001")
	ErrInvalidBaseURL     = errors.New("AUTH-0002")
	ErrInvalidHTTPTimeout = errors.New("AUTH-0003")
	ErrNilTransport       = errors.New("AUTH-0004")
	ErrInvalidTokenTTL    = errors.New("AUTH-0005")
	ErrInternalServer     = errors.New("AUTH-0006")
)
