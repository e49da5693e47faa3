package riskengine

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeOutcome is one recorded trade result, supplied by the trade store.
// The engine never mutates it.
type TradeOutcome struct {
	ExecutedAt time.Time
	RealizedPL decimal.Decimal
}

// EquityPoint is one step of the intraday cumulative equity curve.
type EquityPoint struct {
	Time   time.Time       `json:"time"`
	Equity decimal.Decimal `json:"equity"`
}

// DayVerdict is the discipline judgment for a single trading day.
//
// FinalPL is the cumulative P&L at the point the stopping rule fired (or the
// full-day sum when it never did). FullDayPL is always the untruncated sum of
// every trade in the day; Greedy, LossBreach and Impact compare against it,
// since the flags are about what happened after the trader should have stopped.
type DayVerdict struct {
	Day           string          `json:"day"`
	Curve         []EquityPoint   `json:"curve"`
	FinalPL       decimal.Decimal `json:"final_pl"`
	FullDayPL     decimal.Decimal `json:"full_day_pl"`
	DisciplinedPL decimal.Decimal `json:"disciplined_pl"`
	HitGoalAt     *time.Time      `json:"hit_goal_at,omitempty"`
	HitLossAt     *time.Time      `json:"hit_loss_at,omitempty"`
	Greedy        bool            `json:"greedy"`
	LossBreach    bool            `json:"loss_breach"`
	Impact        decimal.Decimal `json:"impact"`
}

type dayState int

const (
	dayRunning dayState = iota
	dayGoalHit
	dayLossHit
)

// EvaluateDay replays one day's trades, already sorted ascending by time, as a
// cumulative equity curve under a goal/loss stopping rule. The curve stops at
// the trade that touches a bound; the full-day sum keeps accumulating so the
// verdict can tell "stopped at the bound" apart from "kept trading past it".
// A day with no trades yields a neutral verdict with an empty curve.
func EvaluateDay(day string, goal, maxLoss decimal.Decimal, trades []TradeOutcome) (DayVerdict, error) {
	if goal.Sign() <= 0 {
		return DayVerdict{}, invalidf("goal amount must be positive")
	}
	if maxLoss.Sign() <= 0 {
		return DayVerdict{}, invalidf("max loss amount must be positive")
	}

	verdict := DayVerdict{Day: day, Curve: []EquityPoint{}}
	lossLimit := maxLoss.Neg()

	state := dayRunning
	cumulative := decimal.Zero
	fullDay := decimal.Zero
	for _, trade := range trades {
		fullDay = fullDay.Add(trade.RealizedPL)
		if state != dayRunning {
			continue
		}
		cumulative = cumulative.Add(trade.RealizedPL)
		verdict.Curve = append(verdict.Curve, EquityPoint{Time: trade.ExecutedAt, Equity: cumulative})

		switch {
		case cumulative.GreaterThanOrEqual(goal):
			at := trade.ExecutedAt
			verdict.HitGoalAt = &at
			verdict.DisciplinedPL = goal
			state = dayGoalHit
		case cumulative.LessThanOrEqual(lossLimit):
			at := trade.ExecutedAt
			verdict.HitLossAt = &at
			verdict.DisciplinedPL = lossLimit
			state = dayLossHit
		}
	}

	if state == dayRunning {
		verdict.DisciplinedPL = cumulative
	}
	verdict.FinalPL = cumulative
	verdict.FullDayPL = fullDay
	verdict.Greedy = state == dayGoalHit && fullDay.LessThan(goal)
	verdict.LossBreach = state == dayLossHit && fullDay.LessThan(lossLimit)
	verdict.Impact = verdict.DisciplinedPL.Sub(fullDay)
	return verdict, nil
}

// Rounded returns a boundary copy with monetary fields at two fraction digits.
func (v DayVerdict) Rounded() DayVerdict {
	out := v
	out.Curve = make([]EquityPoint, len(v.Curve))
	for i, p := range v.Curve {
		p.Equity = p.Equity.Round(2)
		out.Curve[i] = p
	}
	out.FinalPL = v.FinalPL.Round(2)
	out.FullDayPL = v.FullDayPL.Round(2)
	out.DisciplinedPL = v.DisciplinedPL.Round(2)
	out.Impact = v.Impact.Round(2)
	return out
}
