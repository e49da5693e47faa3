package service

import (
	"context"
	"fmt"
	"time"

	"tradingnotex/internal/analytics"
	"tradingnotex/internal/repository"
	"tradingnotex/internal/riskengine"
)

// AnalyticsService computes journal KPIs over an owner's realized P&Ls.
type AnalyticsService struct {
	Repo repository.Repository
}

func (s *AnalyticsService) KPIs(ctx context.Context, ownerID, from, to string) (analytics.KPIs, error) {
	fromDay, err := time.ParseInLocation(riskengine.DayKeyFormat, from, time.UTC)
	if err != nil {
		return analytics.KPIs{}, fmt.Errorf("%w: from %q is not a valid date", riskengine.ErrInvalidInput, from)
	}
	toDay, err := time.ParseInLocation(riskengine.DayKeyFormat, to, time.UTC)
	if err != nil {
		return analytics.KPIs{}, fmt.Errorf("%w: to %q is not a valid date", riskengine.ErrInvalidInput, to)
	}
	if toDay.Before(fromDay) {
		return analytics.KPIs{}, fmt.Errorf("%w: window end %s is before start %s", riskengine.ErrInvalidInput, to, from)
	}

	pnls, err := s.Repo.ListRealizedPLBetween(ctx, ownerID, fromDay, toDay.AddDate(0, 0, 1))
	if err != nil {
		return analytics.KPIs{}, err
	}
	return analytics.Compute(pnls).Rounded(), nil
}
