package constant

// HeaderConstants defines HTTP header names used in requests
const (
	// AuthorizationHeader carries the bearer session token
	AuthorizationHeader = "Authorization"
	// RequestIDHeader identifies a single outbound request
	RequestIDHeader = "X-Request-Id"
	// BearerPrefix prefixes the token in the Authorization header
	BearerPrefix = "Bearer "
	// ContentTypeJSON is the media type of every request and response body
	ContentTypeJSON = "application/json"
	// DefaultUserAgent identifies this library to the API
	DefaultUserAgent = "lib-auth-go"
)

// TimeConstants defines timeout and interval values
const (
	// DefaultHTTPTimeoutSeconds is the default HTTP client timeout in seconds
	DefaultHTTPTimeoutSeconds = 5
	// DefaultTokenTTLMinutes is the default session token lifetime in minutes
	DefaultTokenTTLMinutes = 24 * 60
)
