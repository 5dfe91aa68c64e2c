package profilerepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yeonjae/fortune-calendar/internal/domain/calendar"
	"github.com/yeonjae/fortune-calendar/internal/domain/profile"
)

// PostgresRepository persists profiles in Postgres. The natal payload
// is stored as jsonb; the core never queries inside it.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Save(ctx context.Context, p profile.StoredProfile) error {
	natal, err := json.Marshal(p.Natal)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO natal_profiles (id, name, natal, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, natal = EXCLUDED.natal
	`, p.ID, p.Name, natal, p.CreatedAt)
	return err
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (profile.StoredProfile, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, natal, created_at
		FROM natal_profiles
		WHERE id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return profile.StoredProfile{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return profile.StoredProfile{}, false, rows.Err()
	}

	var (
		stored  profile.StoredProfile
		natal   []byte
		created time.Time
	)
	if err := rows.Scan(&stored.ID, &stored.Name, &natal, &created); err != nil {
		return profile.StoredProfile{}, false, err
	}
	var parsed calendar.NatalProfile
	if err := json.Unmarshal(natal, &parsed); err != nil {
		return profile.StoredProfile{}, false, err
	}
	stored.Natal = parsed
	stored.CreatedAt = created.UTC()
	return stored, true, rows.Err()
}

var _ profile.Repository = (*PostgresRepository)(nil)
