package repository

import (
	"context"
	"plan_appetit/internal/usecase/interfaces"
	"sync"
)

// KVMemoryRepository keeps values in process memory. Used by tests and by
// STORAGE_DRIVER=memory; nothing survives a restart.
type KVMemoryRepository struct {
	mu        sync.RWMutex
	values    map[string]string
	namespace string
}

var _ interfaces.IKeyValueStore = (*KVMemoryRepository)(nil)

func NewKVMemoryRepository(namespace string) *KVMemoryRepository {
	return &KVMemoryRepository{
		values:    make(map[string]string),
		namespace: namespace,
	}
}

func (r *KVMemoryRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[namespacedKey(r.namespace, key)]
	return v, ok, nil
}

func (r *KVMemoryRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[namespacedKey(r.namespace, key)] = value
	return nil
}
