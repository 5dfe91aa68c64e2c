package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yeonjae/fortune-calendar/internal/domain/astro"
	"github.com/yeonjae/fortune-calendar/internal/domain/saju"
)

func TestBuildEmptyInput(t *testing.T) {
	// A bare gap day against a gap master is bigyeon, so even an
	// otherwise empty input yields the peer tags.
	res := NewBuilder().Build(Input{
		Day:            saju.Ganzhi{Stem: saju.StemGap, Branch: saju.BranchJa},
		DayMaster:      saju.StemGap,
		NatalDayBranch: saju.BranchIn,
	})
	require.Equal(t, []string{"teamwork", "peer_support"}, res.RecommendationKeys)
	require.Empty(t, res.WarningKeys)
}

func TestBuildInteractionTags(t *testing.T) {
	res := NewBuilder().Build(Input{
		Day:            saju.Ganzhi{Stem: saju.StemGap, Branch: saju.BranchJa},
		DayMaster:      saju.StemGap,
		NatalDayBranch: saju.BranchIn,
		Interactions: []saju.BranchInteraction{
			{Type: saju.RelationYukhap, Pillar: "year"},
			{Type: saju.RelationChung, Pillar: "month"},
		},
	})
	require.Equal(t, []string{"partnership", "harmony", "teamwork", "peer_support"}, res.RecommendationKeys)
	require.Equal(t, []string{"sudden_conflict", "avoid_contracts"}, res.WarningKeys)
}

func TestBuildDuplicateTagsPreserved(t *testing.T) {
	// Two yukhap interactions emit the partnership pair twice; nothing
	// deduplicates.
	res := NewBuilder().Build(Input{
		Day:            saju.Ganzhi{Stem: saju.StemGap, Branch: saju.BranchJa},
		DayMaster:      saju.StemGap,
		NatalDayBranch: saju.BranchIn,
		Interactions: []saju.BranchInteraction{
			{Type: saju.RelationYukhap, Pillar: "year"},
			{Type: saju.RelationYukhap, Pillar: "hour"},
		},
	})
	require.Equal(t, []string{"partnership", "harmony", "partnership", "harmony", "teamwork", "peer_support"}, res.RecommendationKeys)
}

func TestBuildSpecialDayTags(t *testing.T) {
	res := NewBuilder().Build(Input{
		Day:            saju.Ganzhi{Stem: saju.StemByeong, Branch: saju.BranchJa},
		DayMaster:      saju.StemGap,
		NatalDayBranch: saju.BranchIn,
		Special: saju.SpecialDayFlags{
			Cheoneulgwiin: true,
			Samjae:        true,
			Yeokma:        true,
		},
	})
	require.Contains(t, res.RecommendationKeys, "noble_help")
	require.Contains(t, res.RecommendationKeys, "travel")
	require.Contains(t, res.WarningKeys, "samjae")
	// yeokma is the one flag that lands on both sides.
	require.Contains(t, res.WarningKeys, "instability")
}

func TestBuildSanggwanBothSides(t *testing.T) {
	// A jeong day under a gap master is sanggwan, which recommends and
	// warns at once.
	res := NewBuilder().Build(Input{
		Day:            saju.Ganzhi{Stem: saju.StemJeong, Branch: saju.BranchJa},
		DayMaster:      saju.StemGap,
		NatalDayBranch: saju.BranchIn,
	})
	require.Equal(t, []string{"expression", "performance"}, res.RecommendationKeys)
	require.Equal(t, []string{"careless_words"}, res.WarningKeys)
}

func TestBuildDayBranchRelations(t *testing.T) {
	// A sa day against an in natal branch is both a punishment and a
	// harm pair.
	res := NewBuilder().Build(Input{
		Day:            saju.Ganzhi{Stem: saju.StemGap, Branch: saju.BranchSa},
		DayMaster:      saju.StemGap,
		NatalDayBranch: saju.BranchIn,
	})
	require.Equal(t, []string{"legal", "injury", "betrayal", "misunderstanding"}, res.WarningKeys)

	// A clash contributes one recommendation alongside its warnings.
	clash := NewBuilder().Build(Input{
		Day:            saju.Ganzhi{Stem: saju.StemGap, Branch: saju.BranchO},
		DayMaster:      saju.StemGap,
		NatalDayBranch: saju.BranchJa,
	})
	require.Contains(t, clash.RecommendationKeys, "careful_postpone")
	require.Equal(t, []string{"major_clash", "conflict", "accident_risk"}, clash.WarningKeys)
}

func TestBuildRetrogradeWarnings(t *testing.T) {
	res := NewBuilder().Build(Input{
		Day:               saju.Ganzhi{Stem: saju.StemGap, Branch: saju.BranchJa},
		DayMaster:         saju.StemGap,
		NatalDayBranch:    saju.BranchIn,
		RetrogradePlanets: []astro.Planet{astro.PlanetMercury, astro.PlanetJupiter, astro.PlanetMars},
	})
	// Jupiter retrograde carries no warning tag.
	require.Equal(t, []string{"mercury_retrograde", "mars_retrograde"}, res.WarningKeys)
}

func TestBuildHourRulerTags(t *testing.T) {
	res := NewBuilder().Build(Input{
		Day:            saju.Ganzhi{Stem: saju.StemGap, Branch: saju.BranchJa},
		DayMaster:      saju.StemGap,
		NatalDayBranch: saju.BranchIn,
		HourRuler:      astro.PlanetVenus,
	})
	require.Equal(t, []string{"teamwork", "peer_support", "love_hour", "art_hour"}, res.RecommendationKeys)

	// Rulers outside the favored pair add nothing.
	plain := NewBuilder().Build(Input{
		Day:            saju.Ganzhi{Stem: saju.StemGap, Branch: saju.BranchJa},
		DayMaster:      saju.StemGap,
		NatalDayBranch: saju.BranchIn,
		HourRuler:      astro.PlanetSaturn,
	})
	require.Equal(t, []string{"teamwork", "peer_support"}, plain.RecommendationKeys)
}
