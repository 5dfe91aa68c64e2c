package astro

import (
	"math"
	"time"
)

// EclipseType distinguishes solar and lunar events.
type EclipseType string

const (
	EclipseSolar EclipseType = "solar"
	EclipseLunar EclipseType = "lunar"
)

// EclipseIntensity bands day-distance from the event.
type EclipseIntensity string

const (
	IntensityStrong EclipseIntensity = "strong"
	IntensityMedium EclipseIntensity = "medium"
	IntensityWeak   EclipseIntensity = "weak"
	IntensityNone   EclipseIntensity = "none"
)

// EclipseEvent is one hand-curated reference entry.
type EclipseEvent struct {
	Date   time.Time
	Type   EclipseType
	Sign   ZodiacSign
	Degree float64
}

func eclipseDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// eclipses spans 2024 through 2030. The table is read-only process-wide
// data; its order decides which event claims a date when two are in
// range (first match wins, not nearest).
var eclipses = []EclipseEvent{
	{Date: eclipseDate(2024, time.March, 25), Type: EclipseLunar, Sign: Libra, Degree: 5},
	{Date: eclipseDate(2024, time.April, 8), Type: EclipseSolar, Sign: Aries, Degree: 19},
	{Date: eclipseDate(2024, time.September, 18), Type: EclipseLunar, Sign: Pisces, Degree: 25},
	{Date: eclipseDate(2024, time.October, 2), Type: EclipseSolar, Sign: Libra, Degree: 10},
	{Date: eclipseDate(2025, time.March, 14), Type: EclipseLunar, Sign: Virgo, Degree: 23},
	{Date: eclipseDate(2025, time.March, 29), Type: EclipseSolar, Sign: Aries, Degree: 9},
	{Date: eclipseDate(2025, time.September, 7), Type: EclipseLunar, Sign: Pisces, Degree: 15},
	{Date: eclipseDate(2025, time.September, 21), Type: EclipseSolar, Sign: Virgo, Degree: 29},
	{Date: eclipseDate(2026, time.February, 17), Type: EclipseSolar, Sign: Aquarius, Degree: 28},
	{Date: eclipseDate(2026, time.March, 3), Type: EclipseLunar, Sign: Virgo, Degree: 12},
	{Date: eclipseDate(2026, time.August, 12), Type: EclipseSolar, Sign: Leo, Degree: 20},
	{Date: eclipseDate(2026, time.August, 28), Type: EclipseLunar, Sign: Pisces, Degree: 4},
	{Date: eclipseDate(2027, time.February, 6), Type: EclipseSolar, Sign: Aquarius, Degree: 17},
	{Date: eclipseDate(2027, time.February, 20), Type: EclipseLunar, Sign: Virgo, Degree: 1},
	{Date: eclipseDate(2027, time.August, 2), Type: EclipseSolar, Sign: Leo, Degree: 9},
	{Date: eclipseDate(2027, time.August, 17), Type: EclipseLunar, Sign: Aquarius, Degree: 24},
	{Date: eclipseDate(2028, time.January, 12), Type: EclipseLunar, Sign: Cancer, Degree: 21},
	{Date: eclipseDate(2028, time.January, 26), Type: EclipseSolar, Sign: Aquarius, Degree: 6},
	{Date: eclipseDate(2028, time.July, 6), Type: EclipseLunar, Sign: Capricorn, Degree: 15},
	{Date: eclipseDate(2028, time.July, 22), Type: EclipseSolar, Sign: Leo, Degree: 0},
	{Date: eclipseDate(2028, time.December, 31), Type: EclipseLunar, Sign: Cancer, Degree: 10},
	{Date: eclipseDate(2029, time.January, 14), Type: EclipseSolar, Sign: Capricorn, Degree: 24},
	{Date: eclipseDate(2029, time.June, 26), Type: EclipseLunar, Sign: Capricorn, Degree: 5},
	{Date: eclipseDate(2029, time.July, 11), Type: EclipseSolar, Sign: Cancer, Degree: 19},
	{Date: eclipseDate(2029, time.December, 20), Type: EclipseLunar, Sign: Gemini, Degree: 29},
	{Date: eclipseDate(2030, time.January, 5), Type: EclipseSolar, Sign: Capricorn, Degree: 14},
	{Date: eclipseDate(2030, time.June, 1), Type: EclipseSolar, Sign: Gemini, Degree: 10},
	{Date: eclipseDate(2030, time.June, 15), Type: EclipseLunar, Sign: Sagittarius, Degree: 24},
	{Date: eclipseDate(2030, time.November, 25), Type: EclipseSolar, Sign: Sagittarius, Degree: 3},
	{Date: eclipseDate(2030, time.December, 9), Type: EclipseLunar, Sign: Gemini, Degree: 17},
}

// EclipseImpactInfo reports proximity to the closest claiming event.
type EclipseImpactInfo struct {
	HasImpact       bool             `json:"hasImpact"`
	Type            EclipseType      `json:"type,omitempty"`
	Intensity       EclipseIntensity `json:"intensity"`
	Sign            ZodiacSign       `json:"sign,omitempty"`
	DaysFromEclipse int              `json:"daysFromEclipse"`
}

// EclipseImpact scans the table in order and returns the first event
// within seven days of the date, banded by day-distance.
func EclipseImpact(date time.Time) EclipseImpactInfo {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	for _, event := range eclipses {
		days := int(math.Abs(midnight.Sub(event.Date).Hours() / 24))
		if days > 7 {
			continue
		}
		intensity := IntensityWeak
		switch {
		case days <= 1:
			intensity = IntensityStrong
		case days <= 3:
			intensity = IntensityMedium
		}
		return EclipseImpactInfo{
			HasImpact:       true,
			Type:            event.Type,
			Intensity:       intensity,
			Sign:            event.Sign,
			DaysFromEclipse: days,
		}
	}
	return EclipseImpactInfo{Intensity: IntensityNone}
}
