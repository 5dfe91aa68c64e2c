package astro

import "time"

// dayRulers maps weekday (Sunday first) to its ruling planet.
var dayRulers = [7]Planet{
	PlanetSun,     // Sunday
	PlanetMoon,    // Monday
	PlanetMars,    // Tuesday
	PlanetMercury, // Wednesday
	PlanetJupiter, // Thursday
	PlanetVenus,   // Friday
	PlanetSaturn,  // Saturday
}

// chaldeanOrder is the rotating hour-ruler sequence.
var chaldeanOrder = [7]Planet{
	PlanetSaturn, PlanetJupiter, PlanetMars, PlanetSun, PlanetVenus, PlanetMercury, PlanetMoon,
}

var chaldeanIndex = map[Planet]int{
	PlanetSaturn:  0,
	PlanetJupiter: 1,
	PlanetMars:    2,
	PlanetSun:     3,
	PlanetVenus:   4,
	PlanetMercury: 5,
	PlanetMoon:    6,
}

// planetaryHourUses lists the activity tags each hour ruler favors.
// Read-only process-wide data.
var planetaryHourUses = map[Planet][]string{
	PlanetSun:     {"leadership", "vitality", "success", "recognition"},
	PlanetMoon:    {"intuition", "family", "home", "emotions"},
	PlanetMars:    {"exercise", "competition", "courage", "surgery"},
	PlanetMercury: {"communication", "contracts", "study", "travel_short"},
	PlanetJupiter: {"expansion", "finance", "legal_matters", "education"},
	PlanetVenus:   {"romance", "art", "beauty", "social"},
	PlanetSaturn:  {"discipline", "real_estate", "endings", "long_term_plans"},
}

// PlanetaryHourInfo describes the ruler of one clock hour.
type PlanetaryHourInfo struct {
	Planet   Planet   `json:"planet"`
	DayRuler Planet   `json:"dayRuler"`
	IsDay    bool     `json:"isDay"`
	GoodFor  []string `json:"goodFor"`
}

// PlanetaryHour resolves the ruling planet of the hour containing the
// given instant. Hours 6 through 17 count as day hours.
func PlanetaryHour(at time.Time) PlanetaryHourInfo {
	dayRuler := dayRulers[int(at.Weekday())]
	hour := at.Hour()

	isDay := hour >= 6 && hour <= 17
	var hourIndex int
	if isDay {
		hourIndex = hour - 6
	} else {
		hourIndex = 12 + (hour+6)%24
	}

	planet := chaldeanOrder[(chaldeanIndex[dayRuler]+hourIndex)%7]
	return PlanetaryHourInfo{
		Planet:   planet,
		DayRuler: dayRuler,
		IsDay:    isDay,
		GoodFor:  planetaryHourUses[planet],
	}
}
