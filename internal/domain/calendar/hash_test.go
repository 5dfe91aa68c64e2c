package calendar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yeonjae/fortune-calendar/internal/domain/astro"
	"github.com/yeonjae/fortune-calendar/internal/domain/saju"
)

func TestCacheKeyStable(t *testing.T) {
	profile := NatalProfile{
		SunSign:       astro.Leo,
		SunElement:    saju.ElementFire,
		DayMasterStem: saju.StemGap,
		DayBranch:     saju.BranchJa,
	}
	opts := Options{MinGrade: 2, Limit: 10}

	first := cacheKey(2025, profile, opts)
	second := cacheKey(2025, profile, opts)
	require.Equal(t, first, second)
	require.Regexp(t, `^cal:[0-9a-f]{16}:2025:2:10$`, first)
}

func TestCacheKeyVariesByInput(t *testing.T) {
	profile := NatalProfile{
		SunSign:       astro.Leo,
		SunElement:    saju.ElementFire,
		DayMasterStem: saju.StemGap,
		DayBranch:     saju.BranchJa,
	}
	opts := Options{MinGrade: 2, Limit: 10}
	base := cacheKey(2025, profile, opts)

	require.NotEqual(t, base, cacheKey(2026, profile, opts))
	require.NotEqual(t, base, cacheKey(2025, profile, Options{MinGrade: 3, Limit: 10}))

	other := profile
	other.DayBranch = saju.BranchO
	require.NotEqual(t, base, cacheKey(2025, other, opts))
}
