package repository

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	value    string
	expireAt time.Time
}

const sweepInterval = 10 * time.Minute

// MemoryCache is an in-process CacheRepository. Expired entries are dropped
// on read, and every sweepInterval a write purges all of them.
type MemoryCache struct {
	mu        sync.RWMutex
	data      map[string]memoryItem
	now       func() time.Time
	lastSweep time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]memoryItem),
		now:  time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	item, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}

	if !item.expireAt.IsZero() && m.now().After(item.expireAt) {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return "", false
	}
	return item.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	now := m.now()
	item := memoryItem{value: value}
	if ttl > 0 {
		item.expireAt = now.Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastSweep.IsZero() {
		m.lastSweep = now
	} else if now.Sub(m.lastSweep) >= sweepInterval {
		m.sweep(now)
		m.lastSweep = now
	}
	m.data[key] = item
	return nil
}

// sweep deletes expired entries. Callers hold the write lock.
func (m *MemoryCache) sweep(now time.Time) {
	for key, item := range m.data {
		if !item.expireAt.IsZero() && now.After(item.expireAt) {
			delete(m.data, key)
		}
	}
}

func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
