package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryBackend keeps records in a map. Nothing survives the process.
type MemoryBackend struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemory() *MemoryBackend {
	return &MemoryBackend{records: make(map[string]Record)}
}

func (b *MemoryBackend) GetItem(_ context.Context, key string) (Record, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	rec, ok := b.records[key]
	return rec, ok, nil
}

func (b *MemoryBackend) SetItem(_ context.Context, key string, rec Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records[key] = rec
	return nil
}

func (b *MemoryBackend) RemoveItem(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.records, key)
	return nil
}

func (b *MemoryBackend) Clear(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = make(map[string]Record)
	return nil
}

func (b *MemoryBackend) Keys(_ context.Context) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.records))
	for k := range b.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (b *MemoryBackend) Close() error { return nil }
