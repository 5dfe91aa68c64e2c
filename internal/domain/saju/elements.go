package saju

// generates encodes the productive cycle: wood feeds fire, fire makes
// earth, earth bears metal, metal carries water, water nourishes wood.
var generates = map[Element]Element{
	ElementWood:  ElementFire,
	ElementFire:  ElementEarth,
	ElementEarth: ElementMetal,
	ElementMetal: ElementWater,
	ElementWater: ElementWood,
}

// controls encodes the controlling cycle: wood parts earth, earth dams
// water, water quenches fire, fire melts metal, metal chops wood.
var controls = map[Element]Element{
	ElementWood:  ElementEarth,
	ElementEarth: ElementWater,
	ElementWater: ElementFire,
	ElementFire:  ElementMetal,
	ElementMetal: ElementWood,
}

// Generates reports whether a produces b in the five-phase cycle.
func Generates(a, b Element) bool {
	return generates[a] == b
}

// Controls reports whether a controls b in the five-phase cycle.
func Controls(a, b Element) bool {
	return controls[a] == b
}
