package saju

import "time"

// SpecialDayFlags collects the boolean day qualities the recommendation
// pass consumes.
type SpecialDayFlags struct {
	Cheoneulgwiin bool `json:"cheoneulgwiin"` // favorable-deity day
	SonEomneun    bool `json:"sonEomneun"`    // no-evil-spirit day
	Geonrok       bool `json:"geonrok"`       // career-strength day
	Samjae        bool `json:"samjae"`        // three-disasters year
	Yeokma        bool `json:"yeokma"`        // travel-star day
	Dohwa         bool `json:"dohwa"`         // peach-blossom day
}

// cheoneulgwiinBranches maps a day master to its favorable-deity
// branches.
var cheoneulgwiinBranches = map[Stem][]Branch{
	StemGap:    {BranchChuk, BranchMi},
	StemMu:     {BranchChuk, BranchMi},
	StemGyeong: {BranchChuk, BranchMi},
	StemEul:    {BranchJa, BranchShin},
	StemGi:     {BranchJa, BranchShin},
	StemByeong: {BranchHae, BranchYu},
	StemJeong:  {BranchHae, BranchYu},
	StemIm:     {BranchSa, BranchMyo},
	StemGye:    {BranchSa, BranchMyo},
	StemSin:    {BranchO, BranchIn},
}

// geonrokBranch maps a day master to its career-strength branch.
var geonrokBranch = map[Stem]Branch{
	StemGap:    BranchIn,
	StemEul:    BranchMyo,
	StemByeong: BranchSa,
	StemMu:     BranchSa,
	StemJeong:  BranchO,
	StemGi:     BranchO,
	StemGyeong: BranchShin,
	StemSin:    BranchYu,
	StemIm:     BranchHae,
	StemGye:    BranchJa,
}

// trineGroups index branches by their three-harmony group, which drives
// samjae, yeokma and dohwa lookups.
var trineGroup = map[Branch]int{
	BranchShin: 0, BranchJa: 0, BranchJin: 0,
	BranchIn: 1, BranchO: 1, BranchSul: 1,
	BranchSa: 2, BranchYu: 2, BranchChuk: 2,
	BranchHae: 3, BranchMyo: 3, BranchMi: 3,
}

// samjaeYears maps a trine group to the year branches of its
// three-disasters span.
var samjaeYears = [4][]Branch{
	{BranchIn, BranchMyo, BranchJin},
	{BranchShin, BranchYu, BranchSul},
	{BranchHae, BranchJa, BranchChuk},
	{BranchSa, BranchO, BranchMi},
}

// yeokmaBranch maps a trine group to its travel-star branch.
var yeokmaBranch = [4]Branch{BranchIn, BranchShin, BranchHae, BranchSa}

// dohwaBranch maps a trine group to its peach-blossom branch.
var dohwaBranch = [4]Branch{BranchYu, BranchMyo, BranchO, BranchJa}

// DetectSpecialDays evaluates every flag for one calendar date. An
// empty natalYearBranch disables the samjae test rather than failing.
func DetectSpecialDays(date time.Time, day Ganzhi, dayMaster Stem, natalDayBranch, natalYearBranch Branch) SpecialDayFlags {
	flags := SpecialDayFlags{}

	for _, b := range cheoneulgwiinBranches[dayMaster] {
		if day.Branch == b {
			flags.Cheoneulgwiin = true
		}
	}
	flags.Geonrok = geonrokBranch[dayMaster] == day.Branch
	flags.SonEomneun = sonEomneunDay(date)

	if natalYearBranch != "" {
		group := trineGroup[natalYearBranch]
		for _, b := range samjaeYears[group] {
			if YearBranch(date.Year()) == b {
				flags.Samjae = true
			}
		}
	}

	group := trineGroup[natalDayBranch]
	flags.Yeokma = yeokmaBranch[group] == day.Branch
	flags.Dohwa = dohwaBranch[group] == day.Branch

	return flags
}

// sonEomneunDay marks the last two days of each ten-day stem cycle,
// when the roaming spirits are said to be absent.
func sonEomneunDay(date time.Time) bool {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	days := int(midnight.Sub(sexagenaryAnchor).Hours() / 24)
	idx := days % 10
	if idx < 0 {
		idx += 10
	}
	return idx == 8 || idx == 9
}
