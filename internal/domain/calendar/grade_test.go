package calendar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGradeForThresholds(t *testing.T) {
	require.Equal(t, 1, gradeFor(15))
	require.Equal(t, 1, gradeFor(40))
	require.Equal(t, 2, gradeFor(14))
	require.Equal(t, 2, gradeFor(7))
	require.Equal(t, 3, gradeFor(6))
	require.Equal(t, 3, gradeFor(0))
	require.Equal(t, 3, gradeFor(-20))
}

func TestGradeForMonotonic(t *testing.T) {
	for score := -30; score < 40; score++ {
		require.GreaterOrEqual(t, gradeFor(score), gradeFor(score+1), "score %d", score)
	}
}

func TestCategoriesForFirstAppearanceOrder(t *testing.T) {
	got := categoriesFor(
		[]string{"love", "career_luck", "meeting"},
		[]string{"samjae", "love"},
	)
	require.Equal(t, []EventCategory{CategoryLove, CategoryCareer, CategoryCaution}, got)
}

func TestCategoriesForUnknownKeysFallBack(t *testing.T) {
	require.Equal(t, []EventCategory{CategoryGeneral}, categoriesFor([]string{"moon_full", "mercury_sign_return"}))
	require.Equal(t, []EventCategory{CategoryGeneral}, categoriesFor())
}

func TestHasCategory(t *testing.T) {
	date := ImportantDate{Categories: []EventCategory{CategoryLove, CategoryTravel}}
	require.True(t, hasCategory(date, CategoryTravel))
	require.False(t, hasCategory(date, CategoryWealth))
}
