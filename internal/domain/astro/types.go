package astro

import "math"

// Planet identifies one of the seven classical bodies the engine tracks.
type Planet string

const (
	PlanetSun     Planet = "sun"
	PlanetMoon    Planet = "moon"
	PlanetMercury Planet = "mercury"
	PlanetVenus   Planet = "venus"
	PlanetMars    Planet = "mars"
	PlanetJupiter Planet = "jupiter"
	PlanetSaturn  Planet = "saturn"
)

// Planets lists every tracked body in the order scoring passes walk them.
var Planets = []Planet{
	PlanetSun,
	PlanetMoon,
	PlanetMercury,
	PlanetVenus,
	PlanetMars,
	PlanetJupiter,
	PlanetSaturn,
}

// ZodiacSign is one of the twelve 30 degree ecliptic segments.
type ZodiacSign string

const (
	Aries       ZodiacSign = "aries"
	Taurus      ZodiacSign = "taurus"
	Gemini      ZodiacSign = "gemini"
	Cancer      ZodiacSign = "cancer"
	Leo         ZodiacSign = "leo"
	Virgo       ZodiacSign = "virgo"
	Libra       ZodiacSign = "libra"
	Scorpio     ZodiacSign = "scorpio"
	Sagittarius ZodiacSign = "sagittarius"
	Capricorn   ZodiacSign = "capricorn"
	Aquarius    ZodiacSign = "aquarius"
	Pisces      ZodiacSign = "pisces"
)

var zodiacOrder = [12]ZodiacSign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// PlanetPosition is a value type recomputed on every call, never cached.
type PlanetPosition struct {
	Sign      ZodiacSign `json:"sign"`
	Longitude float64    `json:"longitude"` // [0, 360)
	Degree    float64    `json:"degree"`    // [0, 30), longitude within the sign
}

// SignAt maps an ecliptic longitude to its zodiac sign.
func SignAt(longitude float64) ZodiacSign {
	idx := int(math.Floor(normalizeDegrees(longitude)/30)) % 12
	return zodiacOrder[idx]
}

// normalizeDegrees wraps an angle into [0, 360).
func normalizeDegrees(angle float64) float64 {
	wrapped := math.Mod(angle, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	return wrapped
}

// angularSeparation returns the absolute difference between two
// longitudes reduced to [0, 180].
func angularSeparation(lon1, lon2 float64) float64 {
	diff := math.Abs(normalizeDegrees(lon1) - normalizeDegrees(lon2))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
