package repositories

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"MediMaga/cache"
	"MediMaga/utils"

	"go.uber.org/zap"
)

// listCache keys cached list reads by a generation number that every write bumps.
// Lists stored under an older generation are never read again and expire by TTL,
// so a slow read that loses the race to a write cannot republish old rows.
type listCache struct {
	cache  *cache.Cache
	prefix string

	// stale is set when a write could not bump the generation. Reads bypass the
	// cache until a later bump succeeds.
	stale atomic.Bool
}

func newListCache(c *cache.Cache, prefix string) *listCache {
	return &listCache{cache: c, prefix: prefix}
}

func (l *listCache) generationKey() string {
	return l.prefix + ":generation"
}

// key returns the cache key for name in the current generation. ok is false when
// the cache cannot be trusted and the caller must read from the store.
func (l *listCache) key(ctx context.Context, name string) (key string, ok bool) {
	if l.stale.Load() {
		l.bump(ctx)
		if l.stale.Load() {
			return "", false
		}
	}

	generation, err := l.cache.Get(ctx, l.generationKey())
	if err != nil {
		utils.GetLogger().Warn("Failed to read cache generation", zap.String("prefix", l.prefix), zap.Error(err))
		return "", false
	}
	if generation == "" {
		generation = "0"
	}
	return fmt.Sprintf("%s:v%s:%s", l.prefix, generation, name), true
}

// bump retires every list cached so far. It runs after the write has committed,
// so a failure marks the cache stale instead of failing the write.
func (l *listCache) bump(ctx context.Context) {
	if _, err := l.cache.Incr(ctx, l.generationKey()); err != nil {
		l.stale.Store(true)
		utils.GetLogger().Warn("Failed to invalidate list cache", zap.String("prefix", l.prefix), zap.Error(err))
		return
	}
	l.stale.Store(false)
}

// cachedRead serves name from the cache, falling back to load and caching its result.
func cachedRead[T any](ctx context.Context, l *listCache, name string, ttl time.Duration, load func() ([]T, error)) ([]T, error) {
	key, ok := l.key(ctx, name)
	if ok {
		var cached []T
		hit, err := l.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			utils.GetLogger().Warn("Failed to get list from cache", zap.String("key", key), zap.Error(err))
		}
		if hit {
			return cached, nil
		}
	}

	records, err := load()
	if err != nil {
		return nil, err
	}

	if ok {
		if err := l.cache.SetJSON(ctx, key, records, ttl); err != nil {
			utils.GetLogger().Warn("Failed to set list in cache", zap.String("key", key), zap.Error(err))
		}
	}
	return records, nil
}
