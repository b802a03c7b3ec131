package external

import (
	"sync"
	"time"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// hitCounter tracks store hits and misses for ports.CacheMetrics implementations
type hitCounter struct {
	statsMu sync.RWMutex
	hits    int64
	misses  int64
}

func (h *hitCounter) RecordHit() {
	h.statsMu.Lock()
	h.hits++
	h.statsMu.Unlock()
}

func (h *hitCounter) RecordMiss() {
	h.statsMu.Lock()
	h.misses++
	h.statsMu.Unlock()
}

func (h *hitCounter) snapshot(now time.Time) ports.CacheStats {
	h.statsMu.RLock()
	defer h.statsMu.RUnlock()

	total := h.hits + h.misses
	ratio := float64(0)
	if total > 0 {
		ratio = float64(h.hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        h.hits,
		Misses:      h.misses,
		TotalOps:    total,
		HitRatio:    ratio,
		LastUpdated: now,
	}
}

func validateKey(key string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}
	return nil
}

func validateEntry(key string, value []byte, ttl time.Duration) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if value == nil {
		return errors.NewValidationError("store value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("store TTL must be positive")
	}
	return nil
}
