package lockstore

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a mutex-guarded map implementation of Store. It shares the
// lazy-expiry contract of the file backend and is used in tests and in
// single-node deployments that do not care about surviving restarts.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
}

type memoryRecord struct {
	expiresAt time.Time
	meta      Metadata
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]memoryRecord)}
}

func memoryKey(identifier, network string, kind Kind) string {
	return string(kind) + "-" + SubjectKey(identifier, network)
}

func (s *MemoryStore) GetRemaining(ctx context.Context, identifier, network string, kind Kind) (time.Duration, error) {
	key := memoryKey(identifier, network, kind)

	s.mu.RLock()
	rec, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return 0, nil
	}

	remaining := time.Until(rec.expiresAt)
	if remaining <= 0 {
		s.mu.Lock()
		// Re-check under the write lock; another claim may have re-set it.
		if cur, ok := s.records[key]; ok && !cur.expiresAt.After(time.Now()) {
			delete(s.records, key)
		}
		s.mu.Unlock()
		return 0, nil
	}

	return remaining, nil
}

func (s *MemoryStore) Set(ctx context.Context, identifier, network string, kind Kind, ttl time.Duration, meta Metadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[memoryKey(identifier, network, kind)] = memoryRecord{
		expiresAt: time.Now().Add(ttl),
		meta:      meta,
	}
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, identifier, network string, kind Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, memoryKey(identifier, network, kind))
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
