package config

import (
	"net/url"
	"strings"
	"time"

	cn "github.com/LerianStudio/lib-auth-go/constant"
	"github.com/LerianStudio/lib-auth-go/model"
	"github.com/LerianStudio/lib-auth-go/pkg"
)

const entityType = "ClientConfig"

// ClientConfig holds the configuration for the auth client
type ClientConfig struct {
	BaseURL   string // Absolute API root, e.g. "https://api.example.com/api"
	BasePath  string // Segment user endpoints are rooted at
	UserAgent string

	// HTTP configuration
	HTTPTimeout time.Duration

	// Session token lifetime in the local store
	TokenTTL time.Duration
}

// NewDefaultConfig creates a new config with sensible defaults
func NewDefaultConfig() ClientConfig {
	return ClientConfig{
		BasePath:    cn.DefaultBasePath,
		UserAgent:   cn.DefaultUserAgent,
		HTTPTimeout: cn.DefaultHTTPTimeoutSeconds * time.Second,
		TokenTTL:    cn.DefaultTokenTTLMinutes * time.Minute,
	}
}

// Validate checks if the configuration is valid
func (c *ClientConfig) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return pkg.ValidateBusinessError(cn.ErrMissingBaseURL, entityType)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return pkg.ValidateBusinessError(cn.ErrInvalidBaseURL, entityType, c.BaseURL)
	}

	if c.HTTPTimeout <= 0 {
		return pkg.ValidateBusinessError(cn.ErrInvalidHTTPTimeout, entityType, c.HTTPTimeout)
	}

	if c.TokenTTL <= 0 {
		return pkg.ValidateBusinessError(cn.ErrInvalidTokenTTL, entityType, c.TokenTTL)
	}

	return nil
}

// FromModel converts a model.Config to a ClientConfig, filling unset fields with defaults
func FromModel(cfg model.Config) (*ClientConfig, error) {
	config := NewDefaultConfig()
	config.BaseURL = strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")

	if cfg.BasePath != "" {
		config.BasePath = cfg.BasePath
	}

	if cfg.UserAgent != "" {
		config.UserAgent = cfg.UserAgent
	}

	if cfg.HTTPTimeoutSeconds != 0 {
		config.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	}

	if cfg.TokenTTLMinutes != 0 {
		config.TokenTTL = time.Duration(cfg.TokenTTLMinutes) * time.Minute
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
