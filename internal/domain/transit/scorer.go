package transit

import (
	"fmt"
	"time"

	"github.com/yeonjae/fortune-calendar/internal/domain/astro"
	"github.com/yeonjae/fortune-calendar/internal/domain/saju"
)

// Result is one transit evaluation for a (date, profile) pair.
type Result struct {
	Score      int      `json:"score"`
	FactorKeys []string `json:"factorKeys"`
	Positive   bool     `json:"positive"`
	Negative   bool     `json:"negative"`
}

// bodyWeights parameterizes the four-rule cascade per body. Mars and
// Saturn carry harsher conflict penalties, modeling conflict and lesson
// themes.
type bodyWeights struct {
	exact     int
	element   int
	generates int
	conflict  int
}

var weights = map[astro.Planet]bodyWeights{
	astro.PlanetMercury: {exact: 5, element: 3, generates: 2, conflict: -2},
	astro.PlanetVenus:   {exact: 6, element: 4, generates: 3, conflict: -3},
	astro.PlanetMars:    {exact: 5, element: 3, generates: 2, conflict: -6},
	astro.PlanetJupiter: {exact: 8, element: 5, generates: 4, conflict: -2},
	astro.PlanetSaturn:  {exact: 4, element: 2, generates: 2, conflict: -7},
	astro.PlanetSun:     {exact: 7, element: 4, generates: 3, conflict: -3},
	astro.PlanetMoon:    {exact: 4, element: 3, generates: 2, conflict: -2},
}

// scoreOrder fixes the body evaluation order.
var scoreOrder = []astro.Planet{
	astro.PlanetMercury,
	astro.PlanetVenus,
	astro.PlanetMars,
	astro.PlanetJupiter,
	astro.PlanetSaturn,
	astro.PlanetSun,
	astro.PlanetMoon,
}

// signElements maps zodiac signs into the five phases. Air signs fold
// into metal; wood enters only from the Saju side.
var signElements = map[astro.ZodiacSign]saju.Element{
	astro.Aries:       saju.ElementFire,
	astro.Leo:         saju.ElementFire,
	astro.Sagittarius: saju.ElementFire,
	astro.Taurus:      saju.ElementEarth,
	astro.Virgo:       saju.ElementEarth,
	astro.Capricorn:   saju.ElementEarth,
	astro.Gemini:      saju.ElementMetal,
	astro.Libra:       saju.ElementMetal,
	astro.Aquarius:    saju.ElementMetal,
	astro.Cancer:      saju.ElementWater,
	astro.Scorpio:     saju.ElementWater,
	astro.Pisces:      saju.ElementWater,
}

// SignElement exposes the zodiac-to-phase mapping for profile
// defaulting at the boundary.
func SignElement(sign astro.ZodiacSign) saju.Element {
	return signElements[sign]
}

// aspectDelta is one signed contribution from the natal-longitude
// aspect layer.
type aspectDelta map[astro.AspectType]int

// aspectLayer runs only for the four bodies that matter most for
// timing. Conjunctions follow the body's polarity: benefics gain,
// malefics lose.
var aspectLayer = []struct {
	planet astro.Planet
	deltas aspectDelta
}{
	{planet: astro.PlanetJupiter, deltas: aspectDelta{
		astro.AspectConjunction: 5, astro.AspectTrine: 6, astro.AspectSextile: 4,
		astro.AspectSquare: -3, astro.AspectOpposition: -4,
	}},
	{planet: astro.PlanetSaturn, deltas: aspectDelta{
		astro.AspectConjunction: -5, astro.AspectTrine: 3, astro.AspectSextile: 2,
		astro.AspectSquare: -6, astro.AspectOpposition: -6,
	}},
	{planet: astro.PlanetMars, deltas: aspectDelta{
		astro.AspectConjunction: -4, astro.AspectTrine: 3, astro.AspectSextile: 2,
		astro.AspectSquare: -5, astro.AspectOpposition: -4,
	}},
	{planet: astro.PlanetVenus, deltas: aspectDelta{
		astro.AspectConjunction: 3, astro.AspectTrine: 4, astro.AspectSextile: 3,
		astro.AspectSquare: -2, astro.AspectOpposition: -2,
	}},
}

// Scorer evaluates the transit sky of one date against a natal Sun.
type Scorer struct{}

// NewScorer creates a transit scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score runs the four-rule cascade for each body in fixed order, then
// the optional aspect layer when the natal Sun longitude is known. The
// final score is a plain sum; no normalization or clamping.
func (s *Scorer) Score(date time.Time, natalSign astro.ZodiacSign, natalElement saju.Element, natalLongitude *float64) Result {
	result := Result{}

	for _, planet := range scoreOrder {
		pos := astro.Position(date, planet)
		w := weights[planet]
		transitElement := signElements[pos.Sign]

		switch {
		case pos.Sign == natalSign:
			result.Score += w.exact
			result.FactorKeys = append(result.FactorKeys, fmt.Sprintf("%s_sign_return", planet))
			result.Positive = true
		case transitElement == natalElement:
			result.Score += w.element
			result.FactorKeys = append(result.FactorKeys, fmt.Sprintf("%s_element_harmony", planet))
			result.Positive = true
		case saju.Generates(transitElement, natalElement):
			result.Score += w.generates
			result.FactorKeys = append(result.FactorKeys, fmt.Sprintf("%s_element_support", planet))
			result.Positive = true
		case saju.Controls(transitElement, natalElement):
			result.Score += w.conflict
			result.FactorKeys = append(result.FactorKeys, fmt.Sprintf("%s_element_conflict", planet))
			result.Negative = true
		}
	}

	if natalLongitude != nil {
		for _, layer := range aspectLayer {
			pos := astro.Position(date, layer.planet)
			aspect := astro.ResolveAspect(pos.Longitude, *natalLongitude)
			delta, ok := layer.deltas[aspect.Aspect]
			if !ok {
				continue
			}
			result.Score += delta
			result.FactorKeys = append(result.FactorKeys, fmt.Sprintf("%s_%s_natal", layer.planet, aspect.Aspect))
		}
	}

	return result
}
