package astro

import (
	"math"
	"time"
)

// retrogradeCycle anchors a stylized retrograde window at the start of
// each body's synodic cycle. This is not a velocity-sign computation.
type retrogradeCycle struct {
	cycleDays  float64
	windowDays float64
}

var retrogradeCycles = map[Planet]retrogradeCycle{
	PlanetMercury: {cycleDays: 116, windowDays: 21},
	PlanetVenus:   {cycleDays: 584, windowDays: 40},
	PlanetMars:    {cycleDays: 780, windowDays: 72},
	PlanetJupiter: {cycleDays: 399, windowDays: 121},
	PlanetSaturn:  {cycleDays: 378, windowDays: 138},
}

// retrogradeOrder fixes the iteration order for RetrogradePlanets.
var retrogradeOrder = []Planet{PlanetMercury, PlanetVenus, PlanetMars, PlanetJupiter, PlanetSaturn}

// IsRetrograde reports whether the body is inside its retrograde window
// on the given date. Bodies without a cycle (Sun, Moon) are never
// retrograde.
func IsRetrograde(date time.Time, planet Planet) bool {
	cycle, ok := retrogradeCycles[planet]
	if !ok {
		return false
	}
	offset := math.Mod(DaysSinceJ2000(date), cycle.cycleDays)
	if offset < 0 {
		offset += cycle.cycleDays
	}
	return offset < cycle.windowDays
}

// RetrogradePlanets filters the five cycling bodies against IsRetrograde.
func RetrogradePlanets(date time.Time) []Planet {
	var out []Planet
	for _, planet := range retrogradeOrder {
		if IsRetrograde(date, planet) {
			out = append(out, planet)
		}
	}
	return out
}
