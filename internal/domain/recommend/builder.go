package recommend

import (
	"github.com/yeonjae/fortune-calendar/internal/domain/astro"
	"github.com/yeonjae/fortune-calendar/internal/domain/saju"
)

// Input gathers everything the tag builder consumes for one date. The
// branch interaction list comes from the external Four-Pillars engine;
// this package never computes pillar-vs-pillar relations itself.
type Input struct {
	Day               saju.Ganzhi
	DayMaster         saju.Stem
	NatalDayBranch    saju.Branch
	Interactions      []saju.BranchInteraction
	Special           saju.SpecialDayFlags
	RetrogradePlanets []astro.Planet
	HourRuler         astro.Planet
}

// Result carries plain tag accumulations. Duplicate tags are preserved;
// two rules emitting the same tag yield two entries.
type Result struct {
	RecommendationKeys []string `json:"recommendationKeys"`
	WarningKeys        []string `json:"warningKeys"`
}

// interactionTags maps each pillar-interaction type to its fixed tag
// pair and polarity.
var interactionRecommendations = map[saju.BranchRelationType][]string{
	saju.RelationYukhap:  {"partnership", "harmony"},
	saju.RelationSamhap:  {"collaboration", "synergy"},
	saju.RelationBanghap: {"expansion", "growth"},
}

var interactionWarnings = map[saju.BranchRelationType][]string{
	saju.RelationChung: {"sudden_conflict", "avoid_contracts"},
	saju.RelationHyung: {"legal_dispute", "injury_risk"},
}

// sipsinTags are the fixed recommendation/warning contributions per
// ten-gods relation.
var sipsinRecommendations = map[saju.Sipsin][]string{
	saju.SipsinBigyeon:   {"teamwork", "peer_support"},
	saju.SipsinSiksin:    {"creativity", "good_food"},
	saju.SipsinSanggwan:  {"expression", "performance"},
	saju.SipsinPyeonjae:  {"side_income", "speculation_luck"},
	saju.SipsinJeongjae:  {"stable_wealth", "savings"},
	saju.SipsinJeonggwan: {"promotion", "official_matters"},
	saju.SipsinPyeonin:   {"study", "unconventional_ideas"},
	saju.SipsinJeongin:   {"documents", "mentor_help"},
}

var sipsinWarnings = map[saju.Sipsin][]string{
	saju.SipsinGeopjae:   {"rivalry", "loss"},
	saju.SipsinSanggwan:  {"careless_words"},
	saju.SipsinPyeongwan: {"pressure", "overwork"},
}

var retrogradeWarnings = map[astro.Planet]string{
	astro.PlanetMercury: "mercury_retrograde",
	astro.PlanetVenus:   "venus_retrograde",
	astro.PlanetMars:    "mars_retrograde",
}

var hourRulerRecommendations = map[astro.Planet][]string{
	astro.PlanetJupiter: {"expansion_hour", "fortune_hour"},
	astro.PlanetVenus:   {"love_hour", "art_hour"},
}

// Builder accumulates recommendation and warning tags for one date.
// Every contribution is a simple list append; there is no weighting.
type Builder struct{}

// NewBuilder creates a tag builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build applies every rule group in fixed order: pillar interactions,
// special day flags, the ten-gods relation, natal day-branch relations,
// retrogrades, then the planetary hour ruler.
func (b *Builder) Build(in Input) Result {
	res := Result{}

	for _, interaction := range in.Interactions {
		if tags, ok := interactionRecommendations[interaction.Type]; ok {
			res.RecommendationKeys = append(res.RecommendationKeys, tags...)
		}
		if tags, ok := interactionWarnings[interaction.Type]; ok {
			res.WarningKeys = append(res.WarningKeys, tags...)
		}
	}

	res = b.applySpecialDays(in.Special, res)

	sipsin := saju.SipsinRelation(in.DayMaster, in.Day.Stem)
	res.RecommendationKeys = append(res.RecommendationKeys, sipsinRecommendations[sipsin]...)
	res.WarningKeys = append(res.WarningKeys, sipsinWarnings[sipsin]...)

	res = b.applyDayBranchRelations(in.Day.Branch, in.NatalDayBranch, res)

	for _, planet := range in.RetrogradePlanets {
		if tag, ok := retrogradeWarnings[planet]; ok {
			res.WarningKeys = append(res.WarningKeys, tag)
		}
	}

	res.RecommendationKeys = append(res.RecommendationKeys, hourRulerRecommendations[in.HourRuler]...)

	return res
}

func (b *Builder) applySpecialDays(flags saju.SpecialDayFlags, res Result) Result {
	if flags.Cheoneulgwiin {
		res.RecommendationKeys = append(res.RecommendationKeys, "noble_help", "important_meeting")
	}
	if flags.SonEomneun {
		res.RecommendationKeys = append(res.RecommendationKeys, "moving", "wedding", "major_purchase")
	}
	if flags.Geonrok {
		res.RecommendationKeys = append(res.RecommendationKeys, "career_luck", "negotiation")
	}
	if flags.Samjae {
		res.WarningKeys = append(res.WarningKeys, "samjae", "caution")
	}
	if flags.Yeokma {
		res.RecommendationKeys = append(res.RecommendationKeys, "travel", "change", "interview")
		res.WarningKeys = append(res.WarningKeys, "instability")
	}
	if flags.Dohwa {
		res.RecommendationKeys = append(res.RecommendationKeys, "romance_luck", "social_charm")
	}
	return res
}

func (b *Builder) applyDayBranchRelations(dayBranch, natalBranch saju.Branch, res Result) Result {
	for _, relation := range saju.BranchRelations(dayBranch, natalBranch) {
		switch relation {
		case saju.RelationYukhap:
			res.RecommendationKeys = append(res.RecommendationKeys, "love", "meeting", "reconciliation")
		case saju.RelationChung:
			res.WarningKeys = append(res.WarningKeys, "major_clash", "conflict", "accident_risk")
			res.RecommendationKeys = append(res.RecommendationKeys, "careful_postpone")
		case saju.RelationHyung:
			res.WarningKeys = append(res.WarningKeys, "legal", "injury")
		case saju.RelationHae:
			res.WarningKeys = append(res.WarningKeys, "betrayal", "misunderstanding")
		}
	}
	return res
}
