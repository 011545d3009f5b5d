// Package cache provides the optional (symbol, window) result cache for
// the analyzer. Entries are pure functions of their key within the TTL,
// so concurrent last-writer-wins insertion is acceptable.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spacesedan/tickerpulse/internal/models"
)

// DefaultTTL is how long a cached record stays fresh.
const DefaultTTL = 5 * time.Minute

// RecordCache stores SentimentRecords keyed by (symbol, window).
// A miss is (zero, false, nil); errors are reserved for backend failures.
type RecordCache interface {
	Get(ctx context.Context, symbol string, days int) (models.SentimentRecord, bool, error)
	Set(ctx context.Context, symbol string, days int, record models.SentimentRecord) error
}

// Key builds the canonical cache key for a (symbol, window) pair.
func Key(symbol string, days int) string {
	return fmt.Sprintf("sentiment:%s:%d", symbol, days)
}

type memoryEntry struct {
	record    models.SentimentRecord
	expiresAt time.Time
}

// MemoryCache is a thread-safe in-process RecordCache with TTL eviction on
// read.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache returns a MemoryCache with the given TTL; ttl <= 0 uses
// DefaultTTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryCache) Get(ctx context.Context, symbol string, days int) (models.SentimentRecord, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[Key(symbol, days)]
	m.mu.RUnlock()

	if !ok {
		return models.SentimentRecord{}, false, nil
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, Key(symbol, days))
		m.mu.Unlock()
		return models.SentimentRecord{}, false, nil
	}
	return entry.record, true, nil
}

func (m *MemoryCache) Set(ctx context.Context, symbol string, days int, record models.SentimentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[Key(symbol, days)] = memoryEntry{
		record:    record,
		expiresAt: m.now().Add(m.ttl),
	}
	return nil
}
