package pillars

import (
	"context"

	"github.com/yeonjae/fortune-calendar/internal/domain/calendar"
	"github.com/yeonjae/fortune-calendar/internal/domain/saju"
)

// StaticSource reports no pillar interactions. It stands in when no
// relation engine is configured; day-branch relations against the natal
// day branch are still evaluated inside the recommendation pass.
type StaticSource struct{}

// NewStaticSource creates the no-interaction fallback.
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

func (s *StaticSource) Interactions(context.Context, saju.Ganzhi, calendar.NatalProfile) ([]saju.BranchInteraction, error) {
	return nil, nil
}

var _ calendar.PillarSource = (*StaticSource)(nil)
