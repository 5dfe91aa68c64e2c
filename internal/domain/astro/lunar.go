package astro

import (
	"math"
	"time"
)

// MoonPhase is the shared 8-bucket phase enum used by both lunar
// classifiers.
type MoonPhase string

const (
	NewMoon        MoonPhase = "new_moon"
	WaxingCrescent MoonPhase = "waxing_crescent"
	FirstQuarter   MoonPhase = "first_quarter"
	WaxingGibbous  MoonPhase = "waxing_gibbous"
	FullMoon       MoonPhase = "full_moon"
	WaningGibbous  MoonPhase = "waning_gibbous"
	LastQuarter    MoonPhase = "last_quarter"
	WaningCrescent MoonPhase = "waning_crescent"
)

// SynodicMonth is the mean length of a lunation in days.
const SynodicMonth = 29.53058867

// newMoonEpoch is a known new moon used as the zero point of the coarse
// cycle-offset classifier.
var newMoonEpoch = time.Date(2000, time.January, 6, 12, 0, 0, 0, time.UTC)

// LunarPhaseInfo is the coarse, cycle-offset view of the Moon.
type LunarPhaseInfo struct {
	Phase      float64   `json:"phase"` // days into the lunation, [0, SynodicMonth)
	PhaseName  MoonPhase `json:"phaseName"`
	PhaseScore int       `json:"phaseScore"`
}

// coarse bucket upper bounds in days, paired with name and score.
var coarseBuckets = []struct {
	upper float64
	name  MoonPhase
	score int
}{
	{upper: 1.85, name: NewMoon, score: 3},
	{upper: 7.38, name: WaxingCrescent, score: 2},
	{upper: 9.23, name: FirstQuarter, score: 1},
	{upper: 14.77, name: WaxingGibbous, score: 2},
	{upper: 16.61, name: FullMoon, score: 3},
	{upper: 22.15, name: WaningGibbous, score: 0},
	{upper: 24.00, name: LastQuarter, score: -1},
	{upper: SynodicMonth, name: WaningCrescent, score: 0},
}

// LunarPhase classifies the Moon by its offset from a reference new
// moon. It intentionally disagrees in granularity with
// MoonPhaseDetailed; callers choose the variant they need.
func LunarPhase(date time.Time) LunarPhaseInfo {
	noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.UTC)
	elapsed := noon.Sub(newMoonEpoch).Hours() / 24
	phase := math.Mod(elapsed, SynodicMonth)
	if phase < 0 {
		phase += SynodicMonth
	}

	for _, bucket := range coarseBuckets {
		if phase < bucket.upper {
			return LunarPhaseInfo{Phase: phase, PhaseName: bucket.name, PhaseScore: bucket.score}
		}
	}
	return LunarPhaseInfo{Phase: phase, PhaseName: WaningCrescent, PhaseScore: 0}
}

// MoonDetail is the precise, angular-separation view of the Moon.
type MoonDetail struct {
	Phase        MoonPhase `json:"phase"`
	Illumination int       `json:"illumination"` // percent
	IsWaxing     bool      `json:"isWaxing"`
	FactorKey    string    `json:"factorKey"`
	Score        int       `json:"score"`
}

// detailBuckets are 45 degree bands offset by 22.5, indexed from the
// band straddling 0 degrees of separation.
var detailBuckets = [8]struct {
	name  MoonPhase
	key   string
	score int
}{
	{name: NewMoon, key: "moon_new", score: 5},
	{name: WaxingCrescent, key: "moon_waxing_crescent", score: 2},
	{name: FirstQuarter, key: "moon_first_quarter", score: 1},
	{name: WaxingGibbous, key: "moon_waxing_gibbous", score: 3},
	{name: FullMoon, key: "moon_full", score: 6},
	{name: WaningGibbous, key: "moon_waning_gibbous", score: 0},
	{name: LastQuarter, key: "moon_last_quarter", score: -1},
	{name: WaningCrescent, key: "moon_waning_crescent", score: 0},
}

// MoonPhaseDetailed classifies the Moon by its angular separation from
// the Sun on the given date.
func MoonPhaseDetailed(date time.Time) MoonDetail {
	sun := Position(date, PlanetSun)
	moon := Position(date, PlanetMoon)
	angle := normalizeDegrees(moon.Longitude - sun.Longitude)
	return moonDetailFromAngle(angle)
}

func moonDetailFromAngle(angle float64) MoonDetail {
	idx := int(math.Floor(normalizeDegrees(angle+22.5)/45)) % 8
	bucket := detailBuckets[idx]
	illumination := int(math.Round((1 - math.Cos(angle*math.Pi/180)) / 2 * 100))
	return MoonDetail{
		Phase:        bucket.name,
		Illumination: illumination,
		IsWaxing:     angle < 180,
		FactorKey:    bucket.key,
		Score:        bucket.score,
	}
}
