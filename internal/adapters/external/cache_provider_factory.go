package external

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

const (
	StoreTypeMemory = "memory"
	StoreTypeRedis  = "redis"
)

// CacheProviderFactory builds the key-value store selected by configuration
type CacheProviderFactory struct {
	clock clockwork.Clock
}

func NewCacheProviderFactory(clock clockwork.Clock) *CacheProviderFactory {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CacheProviderFactory{clock: clock}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg ports.StoreConfig) (ports.CacheProvider, error) {
	switch cfg.Type {
	case StoreTypeMemory, "":
		return NewMemoryCacheProvider(f.clock), nil
	case StoreTypeRedis:
		return NewRedisCacheProviderAdapter(&cfg.Redis)
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported store type: %s", cfg.Type), nil)
	}
}
