package saju

import "time"

// sexagenaryAnchor is 1984-02-02, a gap-ja day, the conventional start
// of the current sexagenary cycle.
var sexagenaryAnchor = time.Date(1984, time.February, 2, 0, 0, 0, 0, time.UTC)

// DayGanzhi labels a calendar date with its stem-branch pair.
func DayGanzhi(date time.Time) Ganzhi {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	days := int(midnight.Sub(sexagenaryAnchor).Hours() / 24)
	idx := days % 60
	if idx < 0 {
		idx += 60
	}
	return Ganzhi{
		Stem:   stemOrder[idx%10],
		Branch: branchOrder[idx%12],
	}
}

// YearBranch labels a western calendar year with its branch. 1984 is a
// ja year.
func YearBranch(year int) Branch {
	idx := (year - 1984) % 12
	if idx < 0 {
		idx += 12
	}
	return branchOrder[idx]
}
