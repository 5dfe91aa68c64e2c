package saju

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func dateOn(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDayGanzhiAnchor(t *testing.T) {
	got := DayGanzhi(dateOn(1984, time.February, 2))
	require.Equal(t, Ganzhi{Stem: StemGap, Branch: BranchJa}, got)

	next := DayGanzhi(dateOn(1984, time.February, 3))
	require.Equal(t, Ganzhi{Stem: StemEul, Branch: BranchChuk}, next)
}

func TestDayGanzhiSixtyDayCycle(t *testing.T) {
	start := dateOn(2024, time.June, 1)
	require.Equal(t, DayGanzhi(start), DayGanzhi(start.AddDate(0, 0, 60)))
	require.NotEqual(t, DayGanzhi(start), DayGanzhi(start.AddDate(0, 0, 30)))
}

func TestDayGanzhiBeforeAnchor(t *testing.T) {
	// The day before a gap-ja day closes the previous cycle.
	got := DayGanzhi(dateOn(1984, time.February, 1))
	require.Equal(t, Ganzhi{Stem: StemGye, Branch: BranchHae}, got)
}

func TestDayGanzhiIgnoresTimeOfDay(t *testing.T) {
	morning := DayGanzhi(time.Date(2025, time.March, 10, 3, 0, 0, 0, time.UTC))
	evening := DayGanzhi(time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC))
	require.Equal(t, morning, evening)
}

func TestYearBranch(t *testing.T) {
	require.Equal(t, BranchJa, YearBranch(1984))
	require.Equal(t, BranchChuk, YearBranch(1985))
	require.Equal(t, BranchHae, YearBranch(1983))
	require.Equal(t, BranchJa, YearBranch(1996))
	require.Equal(t, BranchJin, YearBranch(2024))
}
