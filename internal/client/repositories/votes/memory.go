package votes

import (
	"context"
	"sync"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	markers map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{markers: make(map[string][]byte)}
}

func (r *MemoryRepository) IsMarked(_ context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.markers[key]
	return ok, nil
}

func (r *MemoryRepository) Mark(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.markers[key]; ok {
		return ErrAlreadyMarked
	}
	r.markers[key] = append([]byte(nil), value...)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) (map[string][]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string][]byte, len(r.markers))
	for k, v := range r.markers {
		out[k] = append([]byte(nil), v...)
	}
	return out, nil
}
