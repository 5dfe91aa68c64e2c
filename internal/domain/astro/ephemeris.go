package astro

import (
	"math"
	"time"
)

// j2000 is the reference instant for every mean-motion approximation.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// meanElements holds the base angle at J2000 and the mean daily motion
// per body. These are deliberately simplified mean values, not a real
// Keplerian solution.
var meanElements = map[Planet]struct {
	base   float64 // degrees at J2000
	motion float64 // degrees per day
}{
	PlanetSun:     {base: 280.460, motion: 0.98564736},
	PlanetMoon:    {base: 218.316, motion: 13.176396},
	PlanetVenus:   {base: 181.980, motion: 1.602130},
	PlanetMars:    {base: 355.433, motion: 0.524039},
	PlanetJupiter: {base: 34.351, motion: 0.083056},
	PlanetSaturn:  {base: 50.077, motion: 0.033371},
}

// Mercury is faked as the Sun's mean longitude plus a sinusoidal swing,
// approximating its fast eccentric apparent motion.
const (
	mercurySwingAmplitude = 23.0 // degrees
	mercurySwingPeriod    = 88.0 // days
)

// DaysSinceJ2000 measures the given calendar date, pinned to 12:00 UTC,
// against the J2000 epoch.
func DaysSinceJ2000(date time.Time) float64 {
	noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.UTC)
	return noon.Sub(j2000).Hours() / 24
}

// Position approximates the ecliptic longitude of a body on the given
// calendar date. Any finite date is valid; the call is side-effect free.
func Position(date time.Time, planet Planet) PlanetPosition {
	days := DaysSinceJ2000(date)

	var longitude float64
	if planet == PlanetMercury {
		sun := meanElements[PlanetSun]
		swing := mercurySwingAmplitude * math.Sin(2*math.Pi*days/mercurySwingPeriod)
		longitude = sun.base + sun.motion*days + swing
	} else {
		el := meanElements[planet]
		longitude = el.base + el.motion*days
	}

	longitude = normalizeDegrees(longitude)
	return PlanetPosition{
		Sign:      SignAt(longitude),
		Longitude: longitude,
		Degree:    math.Mod(longitude, 30),
	}
}
