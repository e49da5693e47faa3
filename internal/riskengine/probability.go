package riskengine

import (
	"math"

	"github.com/shopspring/decimal"
)

// CurvePreset selects the decay rate of the reach-probability curve.
type CurvePreset string

const (
	PresetConservative CurvePreset = "conservative"
	PresetNeutral      CurvePreset = "neutral"
	PresetAggressive   CurvePreset = "aggressive"
)

var probHalfR = decimal.New(5, -1)

// ReachProbability estimates the probability that a trade reaches the given
// R-multiple before stopping out. The first 0.5R is treated as near-certain;
// beyond that the probability decays exponentially at a preset-dependent rate.
// Unknown presets fall back to neutral. The result is always in [0, 1].
func ReachProbability(r decimal.Decimal, preset CurvePreset) decimal.Decimal {
	var k float64
	switch preset {
	case PresetConservative:
		k = 0.65
	case PresetAggressive:
		k = 0.30
	default:
		k = 0.45
	}

	effective := r.Sub(probHalfR)
	if effective.Sign() < 0 {
		effective = decimal.Zero
	}

	p := math.Exp(-k * effective.InexactFloat64())
	if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	return decimal.NewFromFloat(p)
}
