package model

// Config is the user-facing configuration of the auth client.
type Config struct {
	BaseURL            string `json:"baseUrl" yaml:"baseUrl"`
	BasePath           string `json:"basePath,omitempty" yaml:"basePath"`
	HTTPTimeoutSeconds int    `json:"httpTimeoutSeconds,omitempty" yaml:"httpTimeoutSeconds"`
	TokenTTLMinutes    int    `json:"tokenTtlMinutes,omitempty" yaml:"tokenTtlMinutes"`
	UserAgent          string `json:"userAgent,omitempty" yaml:"userAgent"`
}
