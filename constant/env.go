package constant

// Environment variable names
const (
	// EnvBaseURL is the absolute URL of the authentication API
	EnvBaseURL = "AUTH_API_BASE_URL"

	// EnvBasePath overrides the "user" base segment
	EnvBasePath = "AUTH_API_BASE_PATH"

	// EnvHTTPTimeoutSeconds sets the HTTP client timeout
	EnvHTTPTimeoutSeconds = "AUTH_HTTP_TIMEOUT_SECONDS"

	// EnvTokenTTLMinutes sets how long a stored session token is kept
	EnvTokenTTLMinutes = "AUTH_TOKEN_TTL_MINUTES"

	// EnvUserAgent overrides the User-Agent header
	EnvUserAgent = "AUTH_USER_AGENT"

	// EnvConfigFile points to an optional YAML configuration file
	EnvConfigFile = "AUTH_CONFIG_FILE"
)
