// Package sdk wires the auth API client from configuration: HTTP transport,
// session token store, metrics and the AuthClient operations.
package sdk

import (
	"net/http"

	"github.com/LerianStudio/lib-auth-go/auth"
	cn "github.com/LerianStudio/lib-auth-go/constant"
	"github.com/LerianStudio/lib-auth-go/internal/api"
	"github.com/LerianStudio/lib-auth-go/internal/cache"
	"github.com/LerianStudio/lib-auth-go/internal/config"
	"github.com/LerianStudio/lib-auth-go/internal/metrics"
	"github.com/LerianStudio/lib-auth-go/util"
	"github.com/LerianStudio/lib-commons/commons"
	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	"github.com/prometheus/client_golang/prometheus"
)

// Client exposes the auth API operations (Login, Logout, Show, ...) over HTTP
type Client struct {
	*auth.Client

	config       *config.ClientConfig
	apiClient    *api.Client
	cacheManager *cache.Manager
	logger       log.Logger
}

type options struct {
	httpClient *http.Client
	registerer prometheus.Registerer
}

// Option customizes New
type Option func(*options)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithRegisterer enables request metrics on the given registerer
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// New creates a new auth client
func New(cfg Config, logger *log.Logger, opts ...Option) (*Client, error) {
	var l log.Logger
	if logger != nil {
		l = *logger
	} else {
		l = zap.InitializeLogger()
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	clientCfg, err := config.FromModel(cfg)
	if err != nil {
		l.Errorf("Invalid configuration: %s", err.Error())
		return nil, err
	}

	cacheManager, err := cache.New(clientCfg.TokenTTL, l)
	if err != nil {
		l.Errorf("Failed to initialize token store: %s", err.Error())
		return nil, err
	}

	var recorder *metrics.Recorder

	if o.registerer != nil {
		recorder, err = metrics.New(o.registerer)
		if err != nil {
			cacheManager.Close()
			l.Errorf("Failed to register metrics: %s", err.Error())

			return nil, err
		}
	}

	apiClient := api.New(clientCfg, o.httpClient, cacheManager, recorder, l)

	authClient, err := auth.New(apiClient, auth.WithBasePath(clientCfg.BasePath))
	if err != nil {
		cacheManager.Close()
		return nil, err
	}

	l.Debugf("Auth client ready [api: %s | base path: %s]", clientCfg.BaseURL, clientCfg.BasePath)

	return &Client{
		Client:       authClient,
		config:       clientCfg,
		apiClient:    apiClient,
		cacheManager: cacheManager,
		logger:       l,
	}, nil
}

// NewFromEnv creates a client from AUTH_* environment variables. When
// AUTH_CONFIG_FILE is set, the YAML file is loaded first and the environment
// overrides it.
func NewFromEnv(logger *log.Logger, opts ...Option) (*Client, error) {
	var l log.Logger
	if logger != nil {
		l = *logger
	} else {
		l = zap.InitializeLogger()
	}

	cfg := LoadFromEnv()

	if path := commons.GetenvOrDefault(cn.EnvConfigFile, ""); path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			l.Errorf("Failed to load %s: %s", path, err.Error())
			return nil, err
		}

		cfg = mergeConfig(fileCfg, cfg)
	}

	if err := util.ValidateEnvVariables(&cfg, l); err != nil {
		return nil, err
	}

	return New(cfg, &l, opts...)
}

// SetHTTPClient allows overriding the HTTP client (useful for testing)
func (c *Client) SetHTTPClient(client *http.Client) {
	c.apiClient.SetHTTPClient(client)
}

// SetToken stores the session token sent as a bearer token on later requests.
// An empty token clears it.
func (c *Client) SetToken(token string) {
	c.cacheManager.Store(token)
}

// ClearToken forgets the session token
func (c *Client) ClearToken() {
	c.cacheManager.Clear()
}

// Token returns the stored session token
func (c *Client) Token() (string, bool) {
	return c.cacheManager.Token()
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// GetLogger returns the logger used by the client
func (c *Client) GetLogger() log.Logger {
	return c.logger
}

// Close releases the token store
func (c *Client) Close() {
	c.cacheManager.Close()
}
