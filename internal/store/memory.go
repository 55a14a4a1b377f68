package store

import (
	"sync"

	"tally/internal/receipt"
)

// MemoryStore is an in-memory Store backed by a mutex-guarded map.
//
// Records live for the lifetime of the process. That is a deliberate
// design choice rather than an omission: the exposed contract does not
// depend on durability, and the default deployment keeps everything in
// memory. Use BoltStore when records must survive restarts.
type MemoryStore struct {
	records map[string]Record
	mu      sync.RWMutex
}

// Put records the receipt and points under id, overwriting any previous
// record for the same id. The method is thread-safe and never fails.
func (ms *MemoryStore) Put(id string, r receipt.Receipt, points int64) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.records[id] = Record{Receipt: r, Points: points}
	return nil
}

// Points returns the stored points for id, or *NotFoundError when no
// record exists. The method is thread-safe.
func (ms *MemoryStore) Points(id string) (int64, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	record, found := ms.records[id]
	if !found {
		return 0, NewNotFoundError(id)
	}
	return record.Points, nil
}

// Exists reports whether a record is present for id.
func (ms *MemoryStore) Exists(id string) bool {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	_, found := ms.records[id]
	return found
}

// Close is a no-op for the in-memory backend.
func (ms *MemoryStore) Close() error {
	return nil
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
	}
}

// Compile-time check: MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
