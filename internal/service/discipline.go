package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tradingnotex/internal/config"
	"tradingnotex/internal/models"
	"tradingnotex/internal/repository"
	"tradingnotex/internal/riskengine"
)

// DisciplineService bridges the trade store and the pure risk engine: it
// fetches an owner's trades for a window, resolves goal/loss limits, runs the
// simulation and rounds the result at the response boundary.
type DisciplineService struct {
	Repo     repository.Repository
	Logger   *zap.Logger
	Defaults config.RiskConfig
}

// ResolveLimits picks the goal and max-loss amounts for a request. Explicit
// amounts win; omitted ones come from the owner's stored settings, then from
// the configured defaults. Validation of the final values is the engine's job.
func (s *DisciplineService) ResolveLimits(ctx context.Context, ownerID string, goal, maxLoss *decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if goal != nil && maxLoss != nil {
		return *goal, *maxLoss, nil
	}

	var stored *models.RiskSettings
	if s.Repo != nil {
		var err error
		stored, err = s.Repo.GetRiskSettings(ctx, ownerID)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
	}

	g := decimal.NewFromFloat(s.Defaults.GoalAmount)
	l := decimal.NewFromFloat(s.Defaults.MaxLossAmount)
	if stored != nil {
		g = stored.GoalAmount
		l = stored.MaxLossAmount
	}
	if goal != nil {
		g = *goal
	}
	if maxLoss != nil {
		l = *maxLoss
	}
	return g, l, nil
}

func (s *DisciplineService) EvaluateDay(ctx context.Context, ownerID, day string, goal, maxLoss *decimal.Decimal) (riskengine.DayVerdict, error) {
	dayStart, err := time.ParseInLocation(riskengine.DayKeyFormat, day, time.UTC)
	if err != nil {
		return riskengine.DayVerdict{}, fmt.Errorf("%w: day %q is not a valid date", riskengine.ErrInvalidInput, day)
	}
	g, l, err := s.ResolveLimits(ctx, ownerID, goal, maxLoss)
	if err != nil {
		return riskengine.DayVerdict{}, err
	}

	trades, err := s.Repo.ListTradesBetween(ctx, ownerID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return riskengine.DayVerdict{}, err
	}

	verdict, err := riskengine.EvaluateDay(day, g, l, toOutcomes(trades))
	if err != nil {
		return riskengine.DayVerdict{}, err
	}
	return verdict.Rounded(), nil
}

func (s *DisciplineService) EvaluateRange(ctx context.Context, ownerID, start, end string, goal, maxLoss *decimal.Decimal) (riskengine.RangeVerdict, error) {
	startDay, err := time.ParseInLocation(riskengine.DayKeyFormat, start, time.UTC)
	if err != nil {
		return riskengine.RangeVerdict{}, fmt.Errorf("%w: start %q is not a valid date", riskengine.ErrInvalidInput, start)
	}
	endDay, err := time.ParseInLocation(riskengine.DayKeyFormat, end, time.UTC)
	if err != nil {
		return riskengine.RangeVerdict{}, fmt.Errorf("%w: end %q is not a valid date", riskengine.ErrInvalidInput, end)
	}
	g, l, err := s.ResolveLimits(ctx, ownerID, goal, maxLoss)
	if err != nil {
		return riskengine.RangeVerdict{}, err
	}

	trades, err := s.Repo.ListTradesBetween(ctx, ownerID, startDay, endDay.AddDate(0, 0, 1))
	if err != nil {
		return riskengine.RangeVerdict{}, err
	}

	byDay := make(map[string][]riskengine.TradeOutcome)
	for _, trade := range trades {
		key := trade.ExecutedAt.UTC().Format(riskengine.DayKeyFormat)
		byDay[key] = append(byDay[key], riskengine.TradeOutcome{
			ExecutedAt: trade.ExecutedAt.UTC(),
			RealizedPL: trade.RealizedPL,
		})
	}

	verdict, err := riskengine.EvaluateRange(startDay, endDay, g, l, byDay)
	if err != nil {
		return riskengine.RangeVerdict{}, err
	}
	return verdict.Rounded(), nil
}

func toOutcomes(trades []models.Trade) []riskengine.TradeOutcome {
	out := make([]riskengine.TradeOutcome, 0, len(trades))
	for _, trade := range trades {
		out = append(out, riskengine.TradeOutcome{
			ExecutedAt: trade.ExecutedAt.UTC(),
			RealizedPL: trade.RealizedPL,
		})
	}
	return out
}
