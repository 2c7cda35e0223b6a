package constant

// Cache configuration constants
const (
	// SessionTokenKey is the cache key of the current bearer token
	SessionTokenKey = "session-token"
	// CacheNumCounters is the number of keys to track frequency
	CacheNumCounters = 1e3
	// CacheMaxCost is the maximum cost of cache (64KB)
	CacheMaxCost = 1 << 16
	// CacheBufferItems is the number of keys per Get buffer
	CacheBufferItems = 64
)
