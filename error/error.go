package error

import (
	"errors"
	"net"
	"net/http"
	"strings"
)

// ApiError is returned by the HTTP transport for any non-2xx response.
// Code and Msg come from the API error body when it has one.
type ApiError struct {
	StatusCode int
	Code       string
	Msg        string
	Body       []byte
}

func (e *ApiError) Error() string {
	return e.Msg
}

// IsConnectionError checks if an error is likely related to network connectivity
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return false
	}

	errStr := strings.ToLower(err.Error())

	connectionErrors := []string{
		"connection refused",
		"no such host",
		"host unreachable",
		"i/o timeout",
		"no route to host",
		"network is unreachable",
		"operation timed out",
		"eof",
		"connection reset by peer",
		"dial tcp",
		"tls handshake",
		"context deadline exceeded",
		"operation canceled",
	}

	for _, msg := range connectionErrors {
		if strings.Contains(errStr, msg) {
			return true
		}
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}

// IsServerError checks if an error carries a 5xx status
func IsServerError(err error) bool {
	status, ok := StatusCode(err)

	return ok && status >= 500 && status < 600
}

// IsClientError checks if an error carries a 4xx status
func IsClientError(err error) bool {
	status, ok := StatusCode(err)

	return ok && status >= 400 && status < 500
}

// IsUnauthorized reports a 401 from the API, usually an expired or missing session
func IsUnauthorized(err error) bool {
	status, ok := StatusCode(err)

	return ok && status == http.StatusUnauthorized
}

// StatusCode extracts the HTTP status of an ApiError anywhere in the chain.
func StatusCode(err error) (int, bool) {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}

	return 0, false
}
