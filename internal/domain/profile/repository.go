package profile

import "context"

// Repository abstracts profile persistence.
type Repository interface {
	Save(ctx context.Context, p StoredProfile) error
	Get(ctx context.Context, id string) (StoredProfile, bool, error)
}
