package votes

import (
	"context"
	"errors"

	"github.com/bluele/gcache"
)

// DefaultCacheSize is the number of marked keys a CachedRepository keeps.
const DefaultCacheSize = 1024

// CachedRepository keeps recently seen markers in an LRU in front of another
// Repository. Only positive answers are cached: markers are never removed,
// so a marked key stays marked, while an unmarked one may change at any time.
type CachedRepository struct {
	next  Repository
	cache gcache.Cache
}

func NewCachedRepository(next Repository, size int) *CachedRepository {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedRepository{next: next, cache: gcache.New(size).LRU().Build()}
}

func (r *CachedRepository) IsMarked(ctx context.Context, key string) (bool, error) {
	if _, err := r.cache.Get(key); err == nil {
		return true, nil
	} else if !errors.Is(err, gcache.KeyNotFoundError) {
		return false, err
	}

	ok, err := r.next.IsMarked(ctx, key)
	if err != nil {
		return false, err
	}
	if ok {
		_ = r.cache.Set(key, struct{}{})
	}
	return ok, nil
}

func (r *CachedRepository) Mark(ctx context.Context, key string, value []byte) error {
	err := r.next.Mark(ctx, key, value)
	if err == nil || errors.Is(err, ErrAlreadyMarked) {
		_ = r.cache.Set(key, struct{}{})
	}
	return err
}

// List always reads through.
func (r *CachedRepository) List(ctx context.Context) (map[string][]byte, error) {
	return r.next.List(ctx)
}
