package model

import (
	"encoding/json"
	"net/http"
)

// Response is a successful API response as returned by a transport.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// ErrorResponse contains error information returned by the auth API
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
