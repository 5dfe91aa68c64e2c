package saju

// BranchRelationType names a branch-pair (or group) relation.
type BranchRelationType string

const (
	RelationYukhap  BranchRelationType = "yukhap"  // six harmonies
	RelationSamhap  BranchRelationType = "samhap"  // three harmonies
	RelationBanghap BranchRelationType = "banghap" // directional harmony
	RelationChung   BranchRelationType = "chung"   // clash
	RelationHyung   BranchRelationType = "hyung"   // punishment
	RelationHae     BranchRelationType = "hae"     // harm
)

// BranchInteraction is one relation reported by the external
// Four-Pillars engine between a day's Ganzhi and a natal pillar. The
// engine computes these; this package only defines the value type and
// the same-pair lookup tables used for the natal day branch.
type BranchInteraction struct {
	Type   BranchRelationType `json:"type"`
	Pillar string             `json:"pillar"` // year | month | day | hour
}

type branchPair struct {
	a, b Branch
}

// yukhapPairs are the six harmony pairs.
var yukhapPairs = []branchPair{
	{BranchJa, BranchChuk},
	{BranchIn, BranchHae},
	{BranchMyo, BranchSul},
	{BranchJin, BranchYu},
	{BranchSa, BranchShin},
	{BranchO, BranchMi},
}

// chungPairs are the six clash pairs.
var chungPairs = []branchPair{
	{BranchJa, BranchO},
	{BranchChuk, BranchMi},
	{BranchIn, BranchShin},
	{BranchMyo, BranchYu},
	{BranchJin, BranchSul},
	{BranchSa, BranchHae},
}

// hyungPairs are the punishment pairs, including the four
// self-punishing branches.
var hyungPairs = []branchPair{
	{BranchIn, BranchSa},
	{BranchSa, BranchShin},
	{BranchIn, BranchShin},
	{BranchChuk, BranchSul},
	{BranchSul, BranchMi},
	{BranchChuk, BranchMi},
	{BranchJa, BranchMyo},
	{BranchJin, BranchJin},
	{BranchO, BranchO},
	{BranchYu, BranchYu},
	{BranchHae, BranchHae},
}

// haePairs are the six harm pairs.
var haePairs = []branchPair{
	{BranchJa, BranchMi},
	{BranchChuk, BranchO},
	{BranchIn, BranchSa},
	{BranchMyo, BranchJin},
	{BranchShin, BranchHae},
	{BranchYu, BranchSul},
}

func pairMatches(pairs []branchPair, a, b Branch) bool {
	for _, p := range pairs {
		if (p.a == a && p.b == b) || (p.a == b && p.b == a) {
			return true
		}
	}
	return false
}

// BranchRelations returns every relation that holds between two
// branches, in a fixed order. A pair can carry more than one relation
// (in/sa is both hyung and hae); all of them are reported.
func BranchRelations(a, b Branch) []BranchRelationType {
	var out []BranchRelationType
	if pairMatches(yukhapPairs, a, b) {
		out = append(out, RelationYukhap)
	}
	if pairMatches(chungPairs, a, b) {
		out = append(out, RelationChung)
	}
	if pairMatches(hyungPairs, a, b) {
		out = append(out, RelationHyung)
	}
	if pairMatches(haePairs, a, b) {
		out = append(out, RelationHae)
	}
	return out
}
