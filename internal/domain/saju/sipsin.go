package saju

// Sipsin is the ten-gods relation derived from comparing two stems'
// element and polarity against the day master.
type Sipsin string

const (
	SipsinBigyeon   Sipsin = "bigyeon"   // peer, same polarity
	SipsinGeopjae   Sipsin = "geopjae"   // rival peer
	SipsinSiksin    Sipsin = "siksin"    // output, same polarity
	SipsinSanggwan  Sipsin = "sanggwan"  // unruly output
	SipsinPyeonjae  Sipsin = "pyeonjae"  // windfall wealth
	SipsinJeongjae  Sipsin = "jeongjae"  // steady wealth
	SipsinPyeongwan Sipsin = "pyeongwan" // harsh authority
	SipsinJeonggwan Sipsin = "jeonggwan" // proper authority
	SipsinPyeonin   Sipsin = "pyeonin"   // unconventional resource
	SipsinJeongin   Sipsin = "jeongin"   // nurturing resource
)

// SipsinRelation derives the ten-gods relation of a stem as seen from
// the day master.
func SipsinRelation(dayMaster, other Stem) Sipsin {
	master := stemInfos[dayMaster]
	target := stemInfos[other]
	samePolarity := master.yang == target.yang

	switch {
	case master.element == target.element:
		if samePolarity {
			return SipsinBigyeon
		}
		return SipsinGeopjae
	case Generates(master.element, target.element):
		if samePolarity {
			return SipsinSiksin
		}
		return SipsinSanggwan
	case Controls(master.element, target.element):
		if samePolarity {
			return SipsinPyeonjae
		}
		return SipsinJeongjae
	case Controls(target.element, master.element):
		if samePolarity {
			return SipsinPyeongwan
		}
		return SipsinJeonggwan
	default: // target generates master
		if samePolarity {
			return SipsinPyeonin
		}
		return SipsinJeongin
	}
}
