package riskengine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Direction of the planned position.
type Direction string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

// DefaultUSDPerPointPerContract is the reference contract rate used when a
// request does not override it, and always used by the optimizer.
var DefaultUSDPerPointPerContract = decimal.NewFromInt(2)

// PlanInput describes a three-leg partial exit plan to price out.
type PlanInput struct {
	StopPoints  decimal.Decimal
	Contracts   int
	Direction   Direction
	Entry       decimal.Decimal
	R1, R2, R3  decimal.Decimal
	P1, P2, P3  int
	USDPerPoint decimal.Decimal
}

// PartialLeg is one exit step of a plan.
type PartialLeg struct {
	Label         string          `json:"label"`
	RiskMultiple  decimal.Decimal `json:"risk_multiple"`
	Points        decimal.Decimal `json:"points"`
	Price         decimal.Decimal `json:"price"`
	Lots          int             `json:"lots"`
	LegPnL        decimal.Decimal `json:"leg_pnl"`
	CumulativePnL decimal.Decimal `json:"cumulative_pnl"`
	StopAction    string          `json:"stop_action"`
}

// PlanHint proposes an adjusted final R when the plan underperforms a full hold.
type PlanHint struct {
	RecommendedR3 decimal.Decimal `json:"recommended_r3"`
	TargetPnL     decimal.Decimal `json:"target_pnl"`
	Message       string          `json:"message"`
}

// PartialPlan is the priced-out result of GeneratePlan.
type PartialPlan struct {
	Legs        []PartialLeg    `json:"legs"`
	PlanPnL     decimal.Decimal `json:"plan_pnl"`
	FullHoldPnL decimal.Decimal `json:"full_hold_pnl"`
	Hint        *PlanHint       `json:"hint,omitempty"`
}

var stopActions = [3]string{
	"move stop to breakeven",
	"trail to last swing / 0.5R",
	"hold trail / target",
}

var legLabels = [3]string{"Partial 1", "Partial 2", "Final"}

// GeneratePlan computes lot allocation, target prices and per-leg P&L for a
// three-leg partial exit plan. It is pure: the same input always produces the
// same plan, and nothing is mutated or stored.
func GeneratePlan(in PlanInput) (PartialPlan, error) {
	if err := validatePlanInput(in); err != nil {
		return PartialPlan{}, err
	}

	lots1, lots2, lots3 := splitLots(in.Contracts, in.P1, in.P2)

	rs := [3]decimal.Decimal{in.R1, in.R2, in.R3}
	lots := [3]int{lots1, lots2, lots3}

	plan := PartialPlan{Legs: make([]PartialLeg, 0, 3)}
	cumulative := decimal.Zero
	for i := 0; i < 3; i++ {
		points := rs[i].Mul(in.StopPoints)
		price := in.Entry.Add(points)
		if in.Direction == DirectionShort {
			price = in.Entry.Sub(points)
		}
		legPnL := points.Mul(in.USDPerPoint).Mul(decimal.NewFromInt(int64(lots[i])))
		cumulative = cumulative.Add(legPnL)
		plan.Legs = append(plan.Legs, PartialLeg{
			Label:         legLabels[i],
			RiskMultiple:  rs[i],
			Points:        points,
			Price:         price,
			Lots:          lots[i],
			LegPnL:        legPnL,
			CumulativePnL: cumulative,
			StopAction:    stopActions[i],
		})
	}

	plan.PlanPnL = cumulative
	plan.FullHoldPnL = in.R3.Mul(in.StopPoints).Mul(in.USDPerPoint).Mul(decimal.NewFromInt(int64(in.Contracts)))

	// Nothing to adjust when the final leg holds no contracts.
	if plan.PlanPnL.LessThan(plan.FullHoldPnL) && lots3 > 0 {
		missing := plan.FullHoldPnL.Sub(plan.PlanPnL)
		pointsNeeded := missing.Div(in.USDPerPoint.Mul(decimal.NewFromInt(int64(lots3))))
		rNeeded := pointsNeeded.Div(in.StopPoints)
		if rNeeded.LessThan(in.R3) {
			rNeeded = in.R3
		}
		plan.Hint = &PlanHint{
			RecommendedR3: rNeeded,
			TargetPnL:     plan.FullHoldPnL,
			Message: fmt.Sprintf("raise R3 to ~%sR to match the full-hold target of $%s",
				rNeeded.Round(1), plan.FullHoldPnL.StringFixed(2)),
		}
	}

	return plan, nil
}

// splitLots floors the percentage allocation of legs 1 and 2 and gives the
// remainder to the final leg. lots1+lots2+lots3 == contracts by construction.
func splitLots(contracts, p1, p2 int) (int, int, int) {
	lots1 := contracts * p1 / 100
	lots2 := contracts * p2 / 100
	return lots1, lots2, contracts - lots1 - lots2
}

func validatePlanInput(in PlanInput) error {
	if in.StopPoints.Sign() <= 0 {
		return invalidf("stop points must be positive")
	}
	if in.Contracts <= 0 {
		return invalidf("contracts must be positive")
	}
	if in.Direction != DirectionLong && in.Direction != DirectionShort {
		return invalidf("direction must be long or short")
	}
	if in.USDPerPoint.Sign() <= 0 {
		return invalidf("usd per point per contract must be positive")
	}
	if in.R1.Sign() < 0 || in.R2.Sign() < 0 || in.R3.Sign() < 0 {
		return invalidf("risk multiples must not be negative")
	}
	if in.R1.GreaterThan(in.R2) || in.R2.GreaterThan(in.R3) {
		return invalidf("risk multiples must satisfy r1 <= r2 <= r3")
	}
	if in.P1 < 0 || in.P2 < 0 || in.P3 < 0 {
		return invalidf("percentages must not be negative")
	}
	if in.P1+in.P2+in.P3 != 100 {
		return invalidf("percentages must sum to 100, got %d", in.P1+in.P2+in.P3)
	}
	return nil
}

// Rounded returns a copy with all monetary and price fields rounded to two
// fraction digits for response boundaries. Internal callers keep full precision.
func (p PartialPlan) Rounded() PartialPlan {
	out := p
	out.Legs = make([]PartialLeg, len(p.Legs))
	for i, leg := range p.Legs {
		leg.Points = leg.Points.Round(2)
		leg.Price = leg.Price.Round(2)
		leg.LegPnL = leg.LegPnL.Round(2)
		leg.CumulativePnL = leg.CumulativePnL.Round(2)
		out.Legs[i] = leg
	}
	out.PlanPnL = p.PlanPnL.Round(2)
	out.FullHoldPnL = p.FullHoldPnL.Round(2)
	if p.Hint != nil {
		hint := *p.Hint
		hint.RecommendedR3 = hint.RecommendedR3.Round(2)
		hint.TargetPnL = hint.TargetPnL.Round(2)
		out.Hint = &hint
	}
	return out
}
