package astro

import (
	"math"
	"time"
)

const (
	// moonHourlyMotion approximates the Moon's travel in degrees per hour.
	moonHourlyMotion = 0.54
	// vocOrb is the tolerance for an upcoming aspect to count.
	vocOrb = 3.0
)

var majorAspectAngles = [4]float64{60, 90, 120, 180}

// VoidOfCourseInfo reports whether the Moon forms another major aspect
// before leaving its current sign.
type VoidOfCourseInfo struct {
	IsVoid         bool       `json:"isVoid"`
	MoonSign       ZodiacSign `json:"moonSign"`
	HoursRemaining int        `json:"hoursRemaining"`
}

// VoidOfCourse tests every other body for an upcoming conjunction or
// major aspect within the remainder of the Moon's current sign.
func VoidOfCourse(date time.Time) VoidOfCourseInfo {
	moon := Position(date, PlanetMoon)
	remaining := 30 - moon.Degree

	isVoid := true
	for _, planet := range Planets {
		if planet == PlanetMoon {
			continue
		}
		other := Position(date, planet)
		if upcomingAspect(moon, other, remaining) {
			isVoid = false
			break
		}
	}

	return VoidOfCourseInfo{
		IsVoid:         isVoid,
		MoonSign:       moon.Sign,
		HoursRemaining: int(math.Round(remaining / moonHourlyMotion)),
	}
}

// upcomingAspect tests an in-sign conjunction later in the sign, then
// each major aspect point projected forward from the Moon against the
// body's actual longitude.
func upcomingAspect(moon, other PlanetPosition, remaining float64) bool {
	if other.Sign == moon.Sign && other.Degree > moon.Degree {
		return true
	}
	for _, angle := range majorAspectAngles {
		point := normalizeDegrees(moon.Longitude + angle)
		drift := angularSeparation(point, other.Longitude)
		if drift <= vocOrb && drift <= remaining {
			return true
		}
	}
	return false
}
