package saju

// Element is one of the five phases.
type Element string

const (
	ElementWood  Element = "wood"
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementMetal Element = "metal"
	ElementWater Element = "water"
)

// Stem is one of the ten heavenly stems, romanized.
type Stem string

const (
	StemGap    Stem = "gap"    // 甲 yang wood
	StemEul    Stem = "eul"    // 乙 yin wood
	StemByeong Stem = "byeong" // 丙 yang fire
	StemJeong  Stem = "jeong"  // 丁 yin fire
	StemMu     Stem = "mu"     // 戊 yang earth
	StemGi     Stem = "gi"     // 己 yin earth
	StemGyeong Stem = "gyeong" // 庚 yang metal
	StemSin    Stem = "sin"    // 辛 yin metal
	StemIm     Stem = "im"     // 壬 yang water
	StemGye    Stem = "gye"    // 癸 yin water
)

// stemOrder fixes the sexagenary stem cycle.
var stemOrder = [10]Stem{
	StemGap, StemEul, StemByeong, StemJeong, StemMu,
	StemGi, StemGyeong, StemSin, StemIm, StemGye,
}

type stemInfo struct {
	element Element
	yang    bool
}

var stemInfos = map[Stem]stemInfo{
	StemGap:    {element: ElementWood, yang: true},
	StemEul:    {element: ElementWood, yang: false},
	StemByeong: {element: ElementFire, yang: true},
	StemJeong:  {element: ElementFire, yang: false},
	StemMu:     {element: ElementEarth, yang: true},
	StemGi:     {element: ElementEarth, yang: false},
	StemGyeong: {element: ElementMetal, yang: true},
	StemSin:    {element: ElementMetal, yang: false},
	StemIm:     {element: ElementWater, yang: true},
	StemGye:    {element: ElementWater, yang: false},
}

// StemElement returns the stem's five-phase element.
func StemElement(s Stem) Element {
	return stemInfos[s].element
}

// StemYang reports the stem's polarity.
func StemYang(s Stem) bool {
	return stemInfos[s].yang
}

// Branch is one of the twelve earthly branches, romanized.
type Branch string

const (
	BranchJa   Branch = "ja"   // 子 rat
	BranchChuk Branch = "chuk" // 丑 ox
	BranchIn   Branch = "in"   // 寅 tiger
	BranchMyo  Branch = "myo"  // 卯 rabbit
	BranchJin  Branch = "jin"  // 辰 dragon
	BranchSa   Branch = "sa"   // 巳 snake
	BranchO    Branch = "o"    // 午 horse
	BranchMi   Branch = "mi"   // 未 goat
	BranchShin Branch = "shin" // 申 monkey
	BranchYu   Branch = "yu"   // 酉 rooster
	BranchSul  Branch = "sul"  // 戌 dog
	BranchHae  Branch = "hae"  // 亥 pig
)

// branchOrder fixes the sexagenary branch cycle.
var branchOrder = [12]Branch{
	BranchJa, BranchChuk, BranchIn, BranchMyo, BranchJin, BranchSa,
	BranchO, BranchMi, BranchShin, BranchYu, BranchSul, BranchHae,
}

// Ganzhi pairs a heavenly stem with an earthly branch.
type Ganzhi struct {
	Stem   Stem   `json:"stem"`
	Branch Branch `json:"branch"`
}
