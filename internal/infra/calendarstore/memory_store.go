package calendarstore

import (
	"context"
	"sync"
	"time"

	"github.com/yeonjae/fortune-calendar/internal/domain/calendar"
)

type memoryEntry struct {
	result    calendar.YearlyResult
	expiresAt time.Time
}

// MemoryStore caches yearly results in process memory, the fallback
// when Valkey is not configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory cache.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryStore) GetYear(_ context.Context, key string) (calendar.YearlyResult, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return calendar.YearlyResult{}, false, nil
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return calendar.YearlyResult{}, false, nil
	}
	return entry.result, true, nil
}

func (s *MemoryStore) SaveYear(_ context.Context, key string, result calendar.YearlyResult, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{result: result, expiresAt: s.now().Add(ttl)}
	return nil
}

var _ calendar.Cache = (*MemoryStore)(nil)
