package util

import "time"

// ISODate is the wire format for calendar dates.
const ISODate = "2006-01-02"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// UTCNoon pins a calendar date to 12:00 UTC, the reference instant for
// all per-day astronomical approximations.
func UTCNoon(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.UTC)
}

// UTCMidnight truncates a timestamp to its UTC calendar date.
func UTCMidnight(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
