package external

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// memorySweepInterval is how often expired entries nobody reads again are removed
const memorySweepInterval = 5 * time.Minute

// MemoryCacheProvider is a process-local key-value store with per-entry expiry.
// Expired entries are dropped on read and by a periodic sweep until Close.
type MemoryCacheProvider struct {
	mu       sync.RWMutex
	items    map[string]memoryEntry
	clock    clockwork.Clock
	stopCh   chan struct{}
	stopOnce sync.Once
	hitCounter
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func NewMemoryCacheProvider(clock clockwork.Clock) *MemoryCacheProvider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	c := &MemoryCacheProvider{
		items:  make(map[string]memoryEntry),
		clock:  clock,
		stopCh: make(chan struct{}),
	}
	go c.cleanup(clock.NewTicker(memorySweepInterval))
	return c
}

// Close stops the sweep; the stored entries stay readable
func (c *MemoryCacheProvider) Close() error {
	c.stopOnce.Do(func() { close(c.stopCh) })
	return nil
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	entry, ok := c.lookup(key)
	if !ok {
		c.RecordMiss()
		return nil, errors.NewNotFoundError("store miss")
	}

	c.RecordHit()
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateEntry(key, value, ttl); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	c.items[key] = memoryEntry{value: stored, expiresAt: c.clock.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	_, ok := c.lookup(key)
	return ok, nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.items = make(map[string]memoryEntry)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	return c.snapshot(c.clock.Now())
}

// lookup returns a live entry, evicting it if it has expired
func (c *MemoryCacheProvider) lookup(key string) (memoryEntry, bool) {
	now := c.clock.Now()

	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return memoryEntry{}, false
	}
	if now.Before(entry.expiresAt) {
		return entry, true
	}

	c.mu.Lock()
	if current, still := c.items[key]; still && !now.Before(current.expiresAt) {
		delete(c.items, key)
	}
	c.mu.Unlock()
	return memoryEntry{}, false
}

func (c *MemoryCacheProvider) cleanup(ticker clockwork.Ticker) {
	defer ticker.Stop()
	for {
		select {
		case <-ticker.Chan():
			c.removeExpiredEntries()
		case <-c.stopCh:
			return
		}
	}
}

func (c *MemoryCacheProvider) removeExpiredEntries() {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.items {
		if !now.Before(entry.expiresAt) {
			delete(c.items, key)
		}
	}
}
