package calendar

// Grade thresholds: the grade is a monotonic function of the combined
// score, so a higher score can never yield a worse grade.
const (
	grade1Threshold = 15
	grade2Threshold = 7
)

func gradeFor(score int) int {
	switch {
	case score >= grade1Threshold:
		return 1
	case score >= grade2Threshold:
		return 2
	default:
		return 3
	}
}

// keyCategories maps individual recommendation/warning/factor keys to
// the category they signal. Keys missing from the table contribute no
// category.
var keyCategories = map[string]EventCategory{
	"love":             CategoryLove,
	"meeting":          CategoryLove,
	"reconciliation":   CategoryLove,
	"romance_luck":     CategoryLove,
	"social_charm":     CategoryLove,
	"love_hour":        CategoryLove,
	"partnership":      CategoryLove,
	"career_luck":      CategoryCareer,
	"promotion":        CategoryCareer,
	"official_matters": CategoryCareer,
	"interview":        CategoryCareer,
	"negotiation":      CategoryCareer,
	"teamwork":         CategoryCareer,
	"collaboration":    CategoryCareer,
	"stable_wealth":    CategoryWealth,
	"savings":          CategoryWealth,
	"side_income":      CategoryWealth,
	"speculation_luck": CategoryWealth,
	"major_purchase":   CategoryWealth,
	"travel":           CategoryTravel,
	"change":           CategoryTravel,
	"moving":           CategoryTravel,
	"injury":           CategoryHealth,
	"injury_risk":      CategoryHealth,
	"overwork":         CategoryHealth,
	"samjae":           CategoryCaution,
	"caution":          CategoryCaution,
	"major_clash":      CategoryCaution,
	"conflict":         CategoryCaution,
	"accident_risk":    CategoryCaution,
	"careful_postpone": CategoryCaution,
	"legal":            CategoryCaution,
	"legal_dispute":    CategoryCaution,
	"avoid_contracts":  CategoryCaution,
	"sudden_conflict":  CategoryCaution,
}

// categoriesFor derives the category set from every key attached to the
// date. Order of first appearance is preserved; the set never holds
// duplicates even when the key lists do. An empty derivation falls back
// to general.
func categoriesFor(keyLists ...[]string) []EventCategory {
	seen := map[EventCategory]bool{}
	var out []EventCategory
	for _, keys := range keyLists {
		for _, key := range keys {
			category, ok := keyCategories[key]
			if !ok || seen[category] {
				continue
			}
			seen[category] = true
			out = append(out, category)
		}
	}
	if len(out) == 0 {
		out = append(out, CategoryGeneral)
	}
	return out
}

func hasCategory(date ImportantDate, category EventCategory) bool {
	for _, c := range date.Categories {
		if c == category {
			return true
		}
	}
	return false
}
