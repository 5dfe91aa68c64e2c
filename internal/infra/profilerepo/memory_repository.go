package profilerepo

import (
	"context"
	"sync"

	"github.com/yeonjae/fortune-calendar/internal/domain/profile"
)

// MemoryRepository keeps profiles in process memory. It backs local
// development and tests, and is the fallback when Postgres is not
// configured.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]profile.StoredProfile
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{profiles: make(map[string]profile.StoredProfile)}
}

func (r *MemoryRepository) Save(_ context.Context, p profile.StoredProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (profile.StoredProfile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	return p, ok, nil
}

var _ profile.Repository = (*MemoryRepository)(nil)
