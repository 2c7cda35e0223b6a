package cache

import (
	"time"

	"github.com/LerianStudio/lib-auth-go/constant"
	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/dgraph-io/ristretto/v2"
)

// Manager keeps the current session token for the HTTP transport
type Manager struct {
	cache  *ristretto.Cache[string, string]
	ttl    time.Duration
	logger log.Logger
}

// New creates a new token store whose entries expire after ttl
func New(ttl time.Duration, logger log.Logger) (*Manager, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: constant.CacheNumCounters,
		MaxCost:     constant.CacheMaxCost,
		BufferItems: constant.CacheBufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &Manager{
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Token returns the stored session token, if any and not expired
func (m *Manager) Token() (string, bool) {
	token, found := m.cache.Get(constant.SessionTokenKey)
	if !found || token == "" {
		return "", false
	}

	return token, true
}

// Store replaces the session token. An empty token clears it.
func (m *Manager) Store(token string) {
	if token == "" {
		m.Clear()
		return
	}

	m.cache.SetWithTTL(constant.SessionTokenKey, token, 1, m.ttl)
	// Sets are buffered; make the token visible to the next request.
	m.cache.Wait()

	m.logger.Debugf("Stored session token [ttl: %s]", m.ttl)
}

// Clear removes the session token
func (m *Manager) Clear() {
	m.cache.Del(constant.SessionTokenKey)
	m.logger.Debugf("Cleared session token")
}

// Close releases the cache goroutines
func (m *Manager) Close() {
	m.cache.Close()
}
