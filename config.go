package sdk

import (
	"fmt"
	"os"

	cn "github.com/LerianStudio/lib-auth-go/constant"
	"github.com/LerianStudio/lib-auth-go/model"
	"github.com/LerianStudio/lib-commons/commons"
	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the auth client.
type Config = model.Config

// LoadFromEnv builds the Config from AUTH_* environment variables.
// Unset numeric values stay zero and fall back to defaults in New.
func LoadFromEnv() Config {
	return Config{
		BaseURL:            commons.GetenvOrDefault(cn.EnvBaseURL, ""),
		BasePath:           commons.GetenvOrDefault(cn.EnvBasePath, ""),
		HTTPTimeoutSeconds: int(commons.GetenvIntOrDefault(cn.EnvHTTPTimeoutSeconds, 0)),
		TokenTTLMinutes:    int(commons.GetenvIntOrDefault(cn.EnvTokenTTLMinutes, 0)),
		UserAgent:          commons.GetenvOrDefault(cn.EnvUserAgent, ""),
	}
}

// LoadFromFile reads a YAML configuration file.
func LoadFromFile(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode yaml: %w", err)
	}

	return cfg, nil
}

// mergeConfig overlays the non-zero fields of override onto base.
func mergeConfig(base, override Config) Config {
	if override.BaseURL != "" {
		base.BaseURL = override.BaseURL
	}

	if override.BasePath != "" {
		base.BasePath = override.BasePath
	}

	if override.HTTPTimeoutSeconds != 0 {
		base.HTTPTimeoutSeconds = override.HTTPTimeoutSeconds
	}

	if override.TokenTTLMinutes != 0 {
		base.TokenTTLMinutes = override.TokenTTLMinutes
	}

	if override.UserAgent != "" {
		base.UserAgent = override.UserAgent
	}

	return base
}
