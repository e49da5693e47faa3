package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tradingnotex/internal/config"
	"tradingnotex/internal/models"
	"tradingnotex/internal/riskengine"
)

func at(day string, hour int) time.Time {
	d, err := time.ParseInLocation("2006-01-02", day, time.UTC)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(hour) * time.Hour)
}

func trade(owner, day string, hour int, pl string) models.Trade {
	return models.Trade{
		OwnerID:    owner,
		ExecutedAt: at(day, hour),
		RealizedPL: decimal.RequireFromString(pl),
	}
}

func newDiscipline(repo *stubRepo) *DisciplineService {
	return &DisciplineService{
		Repo:     repo,
		Defaults: config.RiskConfig{GoalAmount: 2, MaxLossAmount: 2},
	}
}

func TestResolveLimitsPrecedence(t *testing.T) {
	repo := &stubRepo{}
	svc := newDiscipline(repo)
	ctx := context.Background()

	// No stored settings: config defaults.
	g, l, err := svc.ResolveLimits(ctx, "local", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(decimal.NewFromInt(2)) || !l.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("defaults: got goal=%s loss=%s", g, l)
	}

	// Stored settings override defaults.
	if err := repo.UpsertRiskSettings(ctx, &models.RiskSettings{
		OwnerID:       "local",
		GoalAmount:    decimal.NewFromInt(5),
		MaxLossAmount: decimal.NewFromInt(3),
	}); err != nil {
		t.Fatal(err)
	}
	g, l, err = svc.ResolveLimits(ctx, "local", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(decimal.NewFromInt(5)) || !l.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("stored: got goal=%s loss=%s", g, l)
	}

	// Explicit amounts beat stored settings, per field.
	goal := decimal.NewFromInt(10)
	g, l, err = svc.ResolveLimits(ctx, "local", &goal, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(goal) || !l.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("mixed: got goal=%s loss=%s", g, l)
	}
}

func TestEvaluateDayUsesStoredTrades(t *testing.T) {
	repo := &stubRepo{trades: []models.Trade{
		trade("local", "2026-02-02", 14, "1"),
		trade("local", "2026-02-02", 15, "1.5"),
		trade("local", "2026-02-02", 16, "-1"),
		trade("other", "2026-02-02", 14, "100"),
		trade("local", "2026-02-03", 14, "100"),
	}}
	svc := newDiscipline(repo)

	verdict, err := svc.EvaluateDay(context.Background(), "local", "2026-02-02", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !verdict.Greedy {
		t.Fatal("expected greedy flag: goal hit early, full day below goal")
	}
	// Other owners and other days stay out: curve stops at the goal trade.
	if len(verdict.Curve) != 2 {
		t.Fatalf("curve length = %d, want 2", len(verdict.Curve))
	}
	if !verdict.FinalPL.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("FinalPL = %s, want 2.5", verdict.FinalPL)
	}
	if !verdict.FullDayPL.Equal(decimal.RequireFromString("1.5")) {
		t.Fatalf("FullDayPL = %s, want 1.5", verdict.FullDayPL)
	}
}

func TestEvaluateDayInvalidDate(t *testing.T) {
	svc := newDiscipline(&stubRepo{})
	_, err := svc.EvaluateDay(context.Background(), "local", "02/02/2026", nil, nil)
	if !errors.Is(err, riskengine.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestEvaluateRangeBucketsByUTCDay(t *testing.T) {
	repo := &stubRepo{trades: []models.Trade{
		trade("local", "2026-02-02", 22, "3"),
		trade("local", "2026-02-02", 23, "-2"),
		trade("local", "2026-02-03", 0, "-3"),
		trade("local", "2026-02-05", 12, "0.5"),
	}}
	svc := newDiscipline(repo)

	verdict, err := svc.EvaluateRange(context.Background(), "local", "2026-02-02", "2026-02-05", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	// 2026-02-04 had no trades and is skipped.
	if len(verdict.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(verdict.Results))
	}
	if verdict.Results[0].Day != "2026-02-02" || verdict.Results[1].Day != "2026-02-03" {
		t.Fatalf("late-evening and midnight trades landed on %s and %s", verdict.Results[0].Day, verdict.Results[1].Day)
	}
	if verdict.GreedyDays != 1 || verdict.LossBreachDays != 1 || verdict.CompliantDays != 1 {
		t.Fatalf("classification = %d/%d/%d, want 1/1/1",
			verdict.GreedyDays, verdict.LossBreachDays, verdict.CompliantDays)
	}
}

func TestSnapshotDayUpserts(t *testing.T) {
	repo := &stubRepo{trades: []models.Trade{
		trade("a", "2026-02-02", 14, "3"),
		trade("b", "2026-02-02", 14, "-1"),
	}}
	svc := &DailyStatsService{
		Repo:       repo,
		Discipline: newDiscipline(repo),
	}

	if err := svc.SnapshotDay(context.Background(), at("2026-02-02", 5)); err != nil {
		t.Fatal(err)
	}
	if len(repo.stats) != 2 {
		t.Fatalf("stats = %d, want 2", len(repo.stats))
	}
	stat := repo.stats["a/2026-02-02"]
	if stat == nil {
		t.Fatal("missing stat for owner a")
	}
	if !stat.FinalPL.Equal(decimal.NewFromInt(3)) || stat.TradeCount != 1 {
		t.Fatalf("stat = %+v", stat)
	}
}
