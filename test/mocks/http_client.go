package mocks

import (
	"bytes"
	"io"
	"net/http"
)

// RoundTripFunc lets a plain function stand in for the HTTP transport
type RoundTripFunc func(req *http.Request) (*http.Response, error)

// RoundTrip implements the http.RoundTripper interface
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewHTTPClientMock creates a new HTTP client with a mock transport
func NewHTTPClientMock(fn RoundTripFunc) *http.Client {
	return &http.Client{
		Transport: fn,
	}
}

// NewHTTPResponse creates a JSON HTTP response with the given status code and body
func NewHTTPResponse(statusCode int, body []byte) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(bytes.NewReader(body)),
		Header:     header,
	}
}

// HTTPClientErrorMock returns a client whose every request fails with err
func HTTPClientErrorMock(err error) *http.Client {
	return NewHTTPClientMock(func(req *http.Request) (*http.Response, error) {
		return nil, err
	})
}

// HTTPClientWithStatusMock returns a mock HTTP client that returns the given status code
func HTTPClientWithStatusMock(status int, body []byte) *http.Client {
	return NewHTTPClientMock(func(req *http.Request) (*http.Response, error) {
		return NewHTTPResponse(status, body), nil
	})
}
