package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process Store used when no Redis address is
// configured, and by tests. Entries expire lazily on read.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-process Store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// SaveFormatted stores the entry. A non-positive ttl means no expiry.
func (store *MemoryStore) SaveFormatted(
	_ context.Context,
	key string,
	entry Entry,
	ttl time.Duration,
) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	store.entries[FormattedPrefix+key] = memoryEntry{entry: entry, expiresAt: expiresAt}
	return nil
}

// GetFormatted retrieves a cached result.
// Returns ErrNotFound if the key is absent or expired.
func (store *MemoryStore) GetFormatted(_ context.Context, key string) (*Entry, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	stored, ok := store.entries[FormattedPrefix+key]
	if !ok {
		return nil, ErrNotFound
	}

	if !stored.expiresAt.IsZero() && time.Now().After(stored.expiresAt) {
		delete(store.entries, FormattedPrefix+key)
		return nil, ErrNotFound
	}

	entry := stored.entry
	return &entry, nil
}

// DeleteFormatted removes a cached result.
func (store *MemoryStore) DeleteFormatted(_ context.Context, key string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.entries, FormattedPrefix+key)
	return nil
}
