package riskengine

import (
	"github.com/shopspring/decimal"
)

// OptimizeInput bounds the expected-value search for a partial exit plan.
type OptimizeInput struct {
	StopPoints decimal.Decimal
	Contracts  int
	TargetR    decimal.Decimal
	Preset     CurvePreset
}

// OptimizedPlan is the arg-max of the optimizer's candidate grid.
type OptimizedPlan struct {
	R1            decimal.Decimal `json:"r1"`
	R2            decimal.Decimal `json:"r2"`
	R3            decimal.Decimal `json:"r3"`
	P1            int             `json:"p1"`
	P2            int             `json:"p2"`
	P3            int             `json:"p3"`
	ExpectedValue decimal.Decimal `json:"expected_value"`
}

var (
	gridStep  = decimal.New(25, -2)
	gridR1Min = decimal.New(75, -2)
	gridR1Cap = decimal.New(25, -1)
	gridR2Cap = decimal.NewFromInt(4)
)

// Optimize runs a grid search over (r1, r2, p1, p2) with r3 fixed to the
// target and p3 derived, scoring each candidate by expected value under the
// reach-probability curve. The fold keeps the first candidate on ties, so the
// result is deterministic: r1, r2, p1 and p2 are enumerated ascending and only
// a strictly greater EV replaces the incumbent. An empty grid is reported as
// ErrInfeasibleSearch rather than a zero-valued plan.
func Optimize(in OptimizeInput) (OptimizedPlan, error) {
	if in.StopPoints.Sign() <= 0 {
		return OptimizedPlan{}, invalidf("stop points must be positive")
	}
	if in.Contracts <= 0 {
		return OptimizedPlan{}, invalidf("contracts must be positive")
	}
	if in.TargetR.Sign() <= 0 {
		return OptimizedPlan{}, invalidf("target R must be positive")
	}

	r1Max := gridR1Cap
	if t := in.TargetR.Sub(probHalfR); t.LessThan(r1Max) {
		r1Max = t
	}
	r2Max := gridR2Cap
	if t := in.TargetR.Sub(gridStep); t.LessThan(r2Max) {
		r2Max = t
	}

	var best *OptimizedPlan
	for r1 := gridR1Min; r1.LessThanOrEqual(r1Max); r1 = r1.Add(gridStep) {
		for r2 := r1.Add(gridStep); r2.LessThanOrEqual(r2Max); r2 = r2.Add(gridStep) {
			for p1 := 20; p1 <= 70; p1 += 10 {
				p2Max := 60
				if 100-p1 < p2Max {
					p2Max = 100 - p1
				}
				for p2 := 0; p2 <= p2Max; p2 += 10 {
					ev := expectedValue(in, r1, r2, p1, p2)
					if best == nil || ev.GreaterThan(best.ExpectedValue) {
						best = &OptimizedPlan{
							R1:            r1,
							R2:            r2,
							R3:            in.TargetR,
							P1:            p1,
							P2:            p2,
							P3:            100 - p1 - p2,
							ExpectedValue: ev,
						}
					}
				}
			}
		}
	}

	if best == nil {
		return OptimizedPlan{}, ErrInfeasibleSearch
	}
	return *best, nil
}

// expectedValue scores one candidate with the same lot split and leg pricing
// arithmetic as GeneratePlan, at the fixed reference contract rate.
func expectedValue(in OptimizeInput, r1, r2 decimal.Decimal, p1, p2 int) decimal.Decimal {
	prob1 := ReachProbability(r1, in.Preset)
	prob2 := ReachProbability(r2, in.Preset)
	prob3 := ReachProbability(in.TargetR, in.Preset)

	lots1, lots2, lots3 := splitLots(in.Contracts, p1, p2)

	perPoint := in.StopPoints.Mul(DefaultUSDPerPointPerContract)
	risk := perPoint.Mul(decimal.NewFromInt(int64(in.Contracts)))
	pnl1 := r1.Mul(perPoint).Mul(decimal.NewFromInt(int64(lots1)))
	pnl2 := r2.Mul(perPoint).Mul(decimal.NewFromInt(int64(lots2)))
	pnl3 := in.TargetR.Mul(perPoint).Mul(decimal.NewFromInt(int64(lots3)))

	stopped := decimal.NewFromInt(1).Sub(prob1).Mul(risk)
	return prob1.Mul(pnl1).Add(prob2.Mul(pnl2)).Add(prob3.Mul(pnl3)).Sub(stopped)
}

// Rounded returns a boundary copy with the expected value at two fraction digits.
func (p OptimizedPlan) Rounded() OptimizedPlan {
	out := p
	out.ExpectedValue = p.ExpectedValue.Round(2)
	return out
}
