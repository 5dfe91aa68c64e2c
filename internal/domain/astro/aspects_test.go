package astro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveAspect(t *testing.T) {
	cases := []struct {
		name   string
		lon1   float64
		lon2   float64
		aspect AspectType
		orb    float64
	}{
		{name: "conjunction at orb edge", lon1: 0, lon2: 8, aspect: AspectConjunction, orb: 8},
		{name: "conjunction across wrap", lon1: 358, lon2: 2, aspect: AspectConjunction, orb: 4},
		{name: "sextile", lon1: 0, lon2: 54.5, aspect: AspectSextile, orb: 5.5},
		{name: "square", lon1: 10, lon2: 100, aspect: AspectSquare, orb: 0},
		{name: "just outside square orb", lon1: 0, lon2: 98.1, aspect: AspectNone, orb: 0},
		{name: "trine", lon1: 0, lon2: 115, aspect: AspectTrine, orb: 5},
		{name: "opposition", lon1: 0, lon2: 178, aspect: AspectOpposition, orb: 2},
		{name: "nothing near 40", lon1: 0, lon2: 40, aspect: AspectNone, orb: 0},
	}

	for _, tc := range cases {
		got := ResolveAspect(tc.lon1, tc.lon2)
		require.Equal(t, tc.aspect, got.Aspect, tc.name)
		require.InDelta(t, tc.orb, got.Orb, 1e-9, tc.name)
	}
}

func TestResolveAspectOrderBreaksOverlap(t *testing.T) {
	// 66 degrees is within the sextile band and nothing else; 68 falls
	// into the dead space before the square band opens at 82.
	require.Equal(t, AspectSextile, ResolveAspect(0, 66).Aspect)
	require.Equal(t, AspectNone, ResolveAspect(0, 68).Aspect)

	// The conjunction check runs first, so 8 degrees is a conjunction
	// even though no other band reaches it.
	require.Equal(t, AspectConjunction, ResolveAspect(100, 108).Aspect)
}

func TestResolveAspectSymmetry(t *testing.T) {
	require.Equal(t, ResolveAspect(20, 140), ResolveAspect(140, 20))
}
