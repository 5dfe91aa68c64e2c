package calendarstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yeonjae/fortune-calendar/internal/domain/calendar"
)

// ValkeyStore caches computed yearly results in a Valkey-compatible
// database. Keys already carry the profile hash, so entries need no
// invalidation beyond their TTL.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a cache backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "calendar"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) GetYear(ctx context.Context, key string) (calendar.YearlyResult, bool, error) {
	cmd := s.client.B().Get().Key(s.prefix + ":" + key).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return calendar.YearlyResult{}, false, nil
		}
		return calendar.YearlyResult{}, false, err
	}
	var result calendar.YearlyResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return calendar.YearlyResult{}, false, err
	}
	return result, true, nil
}

func (s *ValkeyStore) SaveYear(ctx context.Context, key string, result calendar.YearlyResult, ttl time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	cmd := s.client.B().Set().Key(s.prefix + ":" + key).Value(string(payload))
	if ttl > 0 {
		return s.client.Do(ctx, cmd.Ex(ttl).Build()).Error()
	}
	return s.client.Do(ctx, cmd.Build()).Error()
}

var _ calendar.Cache = (*ValkeyStore)(nil)
