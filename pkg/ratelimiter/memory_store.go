package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// MemoryStore is an in-process Store. Close stops its cleanup goroutine.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time

	cleanupInterval time.Duration
	idleTTL         time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often idle keys are evicted. Zero disables
// the cleanup goroutine.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// WithIdleTTL sets how long a key may stay unused before eviction.
func WithIdleTTL(ttl time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if ttl > 0 {
			ms.idleTTL = ttl
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		entries:         make(map[string]*entry),
		now:             time.Now,
		cleanupInterval: 5 * time.Minute,
		idleTTL:         time.Hour,
		stop:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.cleanup()
	}
	return ms
}

func (ms *MemoryStore) Take(_ context.Context, key string, n int, cfg Config) (*Result, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	e, ok := ms.entries[key]
	if !ok {
		e = &entry{tokens: cfg.Capacity, lastRefill: now}
		ms.entries[key] = e
	}

	if intervals := int(now.Sub(e.lastRefill) / cfg.RefillInterval); intervals > 0 {
		// cap before multiplying so long idle periods cannot overflow
		intervals = min(intervals, cfg.Capacity/cfg.RefillRate+1)
		e.tokens = min(e.tokens+intervals*cfg.RefillRate, cfg.Capacity)
		e.lastRefill = now
	}
	e.lastAccess = now

	allowed := e.tokens >= n
	if allowed {
		e.tokens -= n
	}

	return &Result{
		Limit:     cfg.Capacity,
		Remaining: e.tokens,
		Allowed:   allowed,
		ResetAt:   e.lastRefill.Add(cfg.RefillInterval),
	}, nil
}

func (ms *MemoryStore) Reset(_ context.Context, key string) error {
	ms.mu.Lock()
	delete(ms.entries, key)
	ms.mu.Unlock()
	return nil
}

// Len returns the number of tracked keys.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.entries)
}

// Close stops background cleanup. It is safe to call more than once.
func (ms *MemoryStore) Close() {
	ms.stopOnce.Do(func() { close(ms.stop) })
}

func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.RemoveIdle()
		case <-ms.stop:
			return
		}
	}
}

// RemoveIdle evicts keys unused for longer than the idle TTL.
func (ms *MemoryStore) RemoveIdle() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, e := range ms.entries {
		if now.Sub(e.lastAccess) > ms.idleTTL {
			delete(ms.entries, key)
		}
	}
}
