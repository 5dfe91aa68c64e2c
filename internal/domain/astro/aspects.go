package astro

import "math"

// AspectType names a classical angular relation between two longitudes.
type AspectType string

const (
	AspectNone        AspectType = "none"
	AspectConjunction AspectType = "conjunction"
	AspectSextile     AspectType = "sextile"
	AspectSquare      AspectType = "square"
	AspectTrine       AspectType = "trine"
	AspectOpposition  AspectType = "opposition"
)

// AspectResult is a value type, never persisted.
type AspectResult struct {
	Aspect AspectType `json:"aspect"`
	Orb    float64    `json:"orb"`
}

// aspectChecks classify by first matching threshold. Orb bands can
// overlap near their edges; the fixed check order is the tie-break.
var aspectChecks = []struct {
	aspect AspectType
	angle  float64
	orb    float64
}{
	{aspect: AspectConjunction, angle: 0, orb: 8},
	{aspect: AspectSextile, angle: 60, orb: 6},
	{aspect: AspectSquare, angle: 90, orb: 8},
	{aspect: AspectTrine, angle: 120, orb: 8},
	{aspect: AspectOpposition, angle: 180, orb: 8},
}

// ResolveAspect classifies the angular separation between two ecliptic
// longitudes.
func ResolveAspect(lon1, lon2 float64) AspectResult {
	diff := angularSeparation(lon1, lon2)
	for _, check := range aspectChecks {
		orb := math.Abs(diff - check.angle)
		if orb <= check.orb {
			return AspectResult{Aspect: check.aspect, Orb: orb}
		}
	}
	return AspectResult{Aspect: AspectNone, Orb: 0}
}
