package saju

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func detectOn(t *testing.T, date time.Time, dayMaster Stem, natalDay, natalYear Branch) SpecialDayFlags {
	t.Helper()
	return DetectSpecialDays(date, DayGanzhi(date), dayMaster, natalDay, natalYear)
}

func TestDetectSpecialDaysCheoneulgwiin(t *testing.T) {
	// 1984-02-03 is a chuk day, one of gap's two favorable-deity
	// branches.
	chukDay := dateOn(1984, time.February, 3)
	flags := detectOn(t, chukDay, StemGap, BranchJa, "")
	require.True(t, flags.Cheoneulgwiin)

	// sin looks for o or in instead.
	require.False(t, detectOn(t, chukDay, StemSin, BranchJa, "").Cheoneulgwiin)
}

func TestDetectSpecialDaysGeonrok(t *testing.T) {
	// 1984-02-04 is an in day, gap's career-strength branch.
	inDay := dateOn(1984, time.February, 4)
	require.True(t, detectOn(t, inDay, StemGap, BranchChuk, "").Geonrok)
	require.False(t, detectOn(t, inDay, StemEul, BranchChuk, "").Geonrok)
}

func TestDetectSpecialDaysSonEomneun(t *testing.T) {
	// The last two days of each ten-day stem cycle qualify.
	require.True(t, detectOn(t, dateOn(1984, time.February, 10), StemGap, BranchJa, "").SonEomneun)
	require.True(t, detectOn(t, dateOn(1984, time.February, 11), StemGap, BranchJa, "").SonEomneun)
	require.False(t, detectOn(t, dateOn(1984, time.February, 9), StemGap, BranchJa, "").SonEomneun)
	require.False(t, detectOn(t, dateOn(1984, time.February, 12), StemGap, BranchJa, "").SonEomneun)
}

func TestDetectSpecialDaysSamjae(t *testing.T) {
	// A ja natal year falls into its three-disasters span during in,
	// myo and jin years; 2022 is an in year, 2025 a sa year.
	inYear := dateOn(2022, time.May, 1)
	require.True(t, detectOn(t, inYear, StemGap, BranchJa, BranchJa).Samjae)

	saYear := dateOn(2025, time.May, 1)
	require.False(t, detectOn(t, saYear, StemGap, BranchJa, BranchJa).Samjae)
}

func TestDetectSpecialDaysSamjaeNeedsNatalYear(t *testing.T) {
	inYear := dateOn(2022, time.May, 1)
	require.False(t, detectOn(t, inYear, StemGap, BranchJa, "").Samjae)
}

func TestDetectSpecialDaysYeokmaAndDohwa(t *testing.T) {
	// A ja natal day branch belongs to the shin-ja-jin trine, whose
	// travel star is in and peach blossom is yu.
	inDay := dateOn(1984, time.February, 4)
	flags := detectOn(t, inDay, StemGye, BranchJa, "")
	require.True(t, flags.Yeokma)
	require.False(t, flags.Dohwa)

	yuDay := dateOn(1984, time.February, 11)
	flags = detectOn(t, yuDay, StemGye, BranchJa, "")
	require.False(t, flags.Yeokma)
	require.True(t, flags.Dohwa)
}
