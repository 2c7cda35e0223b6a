package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	cn "github.com/LerianStudio/lib-auth-go/constant"
	libErr "github.com/LerianStudio/lib-auth-go/error"
	"github.com/LerianStudio/lib-auth-go/internal/config"
	"github.com/LerianStudio/lib-auth-go/internal/metrics"
	"github.com/LerianStudio/lib-auth-go/model"
	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/google/uuid"
)

// TokenSource supplies the bearer token attached to every request
type TokenSource interface {
	Token() (string, bool)
}

// Client handles communication with the auth API
type Client struct {
	httpClient *http.Client
	config     *config.ClientConfig
	tokens     TokenSource
	metrics    *metrics.Recorder
	logger     log.Logger
}

// New creates a new API client. tokens and recorder may be nil.
func New(cfg *config.ClientConfig, httpClient *http.Client, tokens TokenSource, recorder *metrics.Recorder, logger log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &Client{
		httpClient: httpClient,
		config:     cfg,
		tokens:     tokens,
		metrics:    recorder,
		logger:     logger,
	}
}

// SetHTTPClient allows overriding the HTTP client (useful for testing)
func (c *Client) SetHTTPClient(client *http.Client) {
	if client != nil {
		c.httpClient = client
	}
}

// Get issues a GET for the relative path
func (c *Client) Get(ctx context.Context, path string) (*model.Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post JSON-encodes body and posts it to the relative path. A nil body sends no body.
func (c *Client) Post(ctx context.Context, path string, body any) (*model.Response, error) {
	var payload []byte

	if body != nil {
		var err error

		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	return c.do(ctx, http.MethodPost, path, payload)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) (*model.Response, error) {
	endpoint, err := url.JoinPath(c.config.BaseURL, path)
	if err != nil {
		return nil, fmt.Errorf("failed to build url for %s: %w", path, err)
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", cn.ContentTypeJSON)
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set(cn.RequestIDHeader, uuid.NewString())

	if payload != nil {
		req.Header.Set("Content-Type", cn.ContentTypeJSON)
	}

	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set(cn.AuthorizationHeader, cn.BearerPrefix+token)
		}
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.Observe(method, path, 0, time.Since(start))
		c.logger.Warnf("Auth request failed - %s %s - error: %s", method, path, err.Error())

		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.metrics.Observe(method, path, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.handleErrorResponse(method, path, resp.StatusCode, body)
	}

	return &model.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// handleErrorResponse turns a non-2xx response into an ApiError
func (c *Client) handleErrorResponse(method, path string, status int, body []byte) error {
	var errorResp model.ErrorResponse

	_ = json.Unmarshal(body, &errorResp)

	apiErr := &libErr.ApiError{
		StatusCode: status,
		Code:       errorResp.Code,
		Msg:        errorResp.Message,
		Body:       body,
	}

	switch {
	case status >= 500 && status < 600:
		if apiErr.Msg == "" {
			apiErr.Msg = fmt.Sprintf("server error: %d", status)
		}

		c.logger.Warnf("Server error from auth API - %s %s - status: %d, code: %s, message: %s",
			method, path, status, errorResp.Code, errorResp.Message)
	case status >= 400 && status < 500:
		if apiErr.Msg == "" {
			apiErr.Msg = fmt.Sprintf("client error: %d", status)
		}

		c.logger.Debugf("Client error from auth API - %s %s - status: %d, code: %s, message: %s",
			method, path, status, errorResp.Code, errorResp.Message)
	default:
		if apiErr.Msg == "" {
			apiErr.Msg = fmt.Sprintf("unexpected status: %d", status)
		}

		c.logger.Debugf("Unexpected status from auth API - %s %s - status: %d", method, path, status)
	}

	return apiErr
}
