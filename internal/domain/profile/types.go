package profile

import (
	"time"

	"github.com/yeonjae/fortune-calendar/internal/domain/calendar"
)

// StoredProfile is a natal profile persisted under a caller-visible id.
// The profile itself is produced by the external extractor; this
// service only stores and returns it.
type StoredProfile struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Natal     calendar.NatalProfile `json:"natal"`
	CreatedAt time.Time             `json:"createdAt"`
}

// CreateRequest is the payload accepted by the create endpoint.
type CreateRequest struct {
	Name  string                `json:"name"`
	Natal calendar.NatalProfile `json:"natal" binding:"required"`
}
