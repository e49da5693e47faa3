package riskengine

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dayTrades(pls ...string) []TradeOutcome {
	base := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	out := make([]TradeOutcome, 0, len(pls))
	for i, pl := range pls {
		out = append(out, TradeOutcome{
			ExecutedAt: base.Add(time.Duration(i) * 15 * time.Minute),
			RealizedPL: dec(pl),
		})
	}
	return out
}

func TestEvaluateDay_GoalHitAndHeld(t *testing.T) {
	trades := dayTrades("1.5", "1.0")
	v, err := EvaluateDay("2025-03-10", dec("2"), dec("2"), trades)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if v.HitGoalAt == nil || !v.HitGoalAt.Equal(trades[1].ExecutedAt) {
		t.Fatalf("hitGoalAt=%v want time of trade 2", v.HitGoalAt)
	}
	if v.HitLossAt != nil {
		t.Fatalf("hitLossAt=%v want nil", v.HitLossAt)
	}
	if !v.DisciplinedPL.Equal(dec("2")) {
		t.Fatalf("disciplined=%s want=2", v.DisciplinedPL)
	}
	if !v.FullDayPL.Equal(dec("2.5")) {
		t.Fatalf("full day=%s want=2.5", v.FullDayPL)
	}
	// Day ended at or above the goal: no profit given back.
	if v.Greedy {
		t.Fatalf("greedy=true want=false")
	}
	if !v.Impact.Equal(dec("-0.5")) {
		t.Fatalf("impact=%s want=-0.5", v.Impact)
	}
}

func TestEvaluateDay_GreedyGivesBackProfit(t *testing.T) {
	trades := dayTrades("2.5", "-1.0")
	v, err := EvaluateDay("2025-03-10", dec("2"), dec("2"), trades)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if v.HitGoalAt == nil || !v.HitGoalAt.Equal(trades[0].ExecutedAt) {
		t.Fatalf("hitGoalAt=%v want time of trade 1", v.HitGoalAt)
	}
	// Curve stops at the goal hit; the later trade is not replayed into it.
	if len(v.Curve) != 1 {
		t.Fatalf("curve len=%d want=1", len(v.Curve))
	}
	if !v.FinalPL.Equal(dec("2.5")) {
		t.Fatalf("final=%s want=2.5 (cumulative at stop)", v.FinalPL)
	}
	if !v.FullDayPL.Equal(dec("1.5")) {
		t.Fatalf("full day=%s want=1.5", v.FullDayPL)
	}
	if !v.Greedy {
		t.Fatalf("greedy=false want=true: day ended below the goal after hitting it")
	}
	if v.LossBreach {
		t.Fatalf("lossBreach=true want=false")
	}
	if !v.Impact.Equal(dec("0.5")) {
		t.Fatalf("impact=%s want=0.5", v.Impact)
	}
}

func TestEvaluateDay_LossBreach(t *testing.T) {
	trades := dayTrades("-2.5", "-0.5")
	v, err := EvaluateDay("2025-03-10", dec("2"), dec("2"), trades)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if v.HitLossAt == nil || !v.HitLossAt.Equal(trades[0].ExecutedAt) {
		t.Fatalf("hitLossAt=%v want time of trade 1", v.HitLossAt)
	}
	if !v.DisciplinedPL.Equal(dec("-2")) {
		t.Fatalf("disciplined=%s want=-2", v.DisciplinedPL)
	}
	if !v.FullDayPL.Equal(dec("-3")) {
		t.Fatalf("full day=%s want=-3", v.FullDayPL)
	}
	if !v.LossBreach {
		t.Fatalf("lossBreach=false want=true: trading continued past the limit")
	}
	if v.Greedy {
		t.Fatalf("greedy=true want=false")
	}
	if !v.Impact.Equal(dec("1")) {
		t.Fatalf("impact=%s want=1", v.Impact)
	}
}

func TestEvaluateDay_LossHitButRecoveredStops(t *testing.T) {
	// The limit was touched but the trader would have stopped there; the later
	// recovery never enters the curve, and the breach flag needs the full day
	// to end below the limit.
	trades := dayTrades("-2.0", "3.0")
	v, err := EvaluateDay("2025-03-10", dec("2"), dec("2"), trades)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if v.HitLossAt == nil {
		t.Fatalf("hitLossAt=nil want set")
	}
	if v.LossBreach {
		t.Fatalf("lossBreach=true want=false: day recovered above the limit")
	}
	if !v.FullDayPL.Equal(dec("1")) {
		t.Fatalf("full day=%s want=1", v.FullDayPL)
	}
	if !v.Impact.Equal(dec("-3")) {
		t.Fatalf("impact=%s want=-3 (discipline would have cost the recovery)", v.Impact)
	}
}

func TestEvaluateDay_NoTriggerImpactZero(t *testing.T) {
	trades := dayTrades("0.5", "-0.25", "0.5")
	v, err := EvaluateDay("2025-03-10", dec("2"), dec("2"), trades)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if v.HitGoalAt != nil || v.HitLossAt != nil {
		t.Fatalf("no bound should be hit: %+v", v)
	}
	if len(v.Curve) != 3 {
		t.Fatalf("curve len=%d want=3", len(v.Curve))
	}
	if !v.DisciplinedPL.Equal(v.FullDayPL) || !v.FinalPL.Equal(v.FullDayPL) {
		t.Fatalf("disciplined=%s final=%s fullDay=%s want all equal",
			v.DisciplinedPL, v.FinalPL, v.FullDayPL)
	}
	if !v.Impact.IsZero() {
		t.Fatalf("impact=%s want=0", v.Impact)
	}
}

func TestEvaluateDay_EmptyDay(t *testing.T) {
	v, err := EvaluateDay("2025-03-10", dec("2"), dec("2"), nil)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(v.Curve) != 0 {
		t.Fatalf("curve len=%d want=0", len(v.Curve))
	}
	if v.Greedy || v.LossBreach || v.HitGoalAt != nil || v.HitLossAt != nil {
		t.Fatalf("empty day must be neutral: %+v", v)
	}
	if !v.FinalPL.IsZero() || !v.Impact.IsZero() {
		t.Fatalf("final=%s impact=%s want both 0", v.FinalPL, v.Impact)
	}
}

func TestEvaluateDay_InvalidLimits(t *testing.T) {
	if _, err := EvaluateDay("2025-03-10", decimal.Zero, dec("2"), nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero goal: err=%v want ErrInvalidInput", err)
	}
	if _, err := EvaluateDay("2025-03-10", dec("2"), dec("-1"), nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative max loss: err=%v want ErrInvalidInput", err)
	}
}
