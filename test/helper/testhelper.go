// Package helper provides test utilities for the auth client packages
package helper

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// CapturedRequest is what the fake API saw for one request
type CapturedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// TestServer is a fake auth API that records every request and answers
// with a fixed status and JSON body
type TestServer struct {
	*httptest.Server
	URL string

	mu       sync.Mutex
	requests []CapturedRequest
	status   int
	body     any
}

// NewTestServer starts a fake API answering every request with status and body
func NewTestServer(t *testing.T, status int, body any) *TestServer {
	t.Helper()

	ts := &TestServer{status: status, body: body}
	ts.Server = httptest.NewServer(http.HandlerFunc(ts.handle))
	ts.URL = ts.Server.URL
	t.Cleanup(ts.Close)

	return ts
}

func (ts *TestServer) handle(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	ts.mu.Lock()
	ts.requests = append(ts.requests, CapturedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Body:   raw,
	})
	status, body := ts.status, ts.body
	ts.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// Requests returns a copy of the captured requests
func (ts *TestServer) Requests() []CapturedRequest {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	out := make([]CapturedRequest, len(ts.requests))
	copy(out, ts.requests)

	return out
}

// LastRequest returns the most recent request, failing the test if there is none
func (ts *TestServer) LastRequest(t *testing.T) CapturedRequest {
	t.Helper()

	reqs := ts.Requests()
	require.NotEmpty(t, reqs, "fake API received no requests")

	return reqs[len(reqs)-1]
}

// AssertRequest asserts method and path of a captured request
func AssertRequest(t *testing.T, req CapturedRequest, expectedMethod, expectedPath string) {
	t.Helper()
	require.Equal(t, expectedMethod, req.Method, "unexpected HTTP method")
	require.Equal(t, expectedPath, req.Path, "unexpected request path")
}

// AssertHeader asserts that the request has the expected header
func AssertHeader(t *testing.T, req CapturedRequest, key, expectedValue string) {
	t.Helper()
	require.Equal(t, expectedValue, req.Header.Get(key), "unexpected header value")
}

// AssertJSONBody asserts the request body is JSON-equal to expected
func AssertJSONBody(t *testing.T, req CapturedRequest, expected string) {
	t.Helper()
	require.JSONEq(t, expected, string(req.Body), "unexpected request body")
}
