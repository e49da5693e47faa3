package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tradingnotex/internal/models"
	"tradingnotex/internal/repository"
	"tradingnotex/internal/riskengine"
)

// DailyStatsService snapshots each owner's day verdict into the
// discipline_day_stats table. It runs from cron after a UTC day closes, and
// the upsert makes reruns idempotent.
type DailyStatsService struct {
	Repo       repository.Repository
	Discipline *DisciplineService
	Logger     *zap.Logger
}

// SnapshotPreviousDay evaluates the day before now (UTC) for every owner that traded.
func (s *DailyStatsService) SnapshotPreviousDay(ctx context.Context) error {
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return s.SnapshotDay(ctx, day)
}

func (s *DailyStatsService) SnapshotDay(ctx context.Context, day time.Time) error {
	if s == nil || s.Repo == nil || s.Discipline == nil {
		return nil
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	from := day
	to := day.AddDate(0, 0, 1)

	owners, err := s.Repo.ListTradeOwnersBetween(ctx, from, to)
	if err != nil {
		return err
	}

	key := day.Format(riskengine.DayKeyFormat)
	for _, owner := range owners {
		verdict, err := s.Discipline.EvaluateDay(ctx, owner, key, nil, nil)
		if err != nil {
			if s.Logger != nil {
				s.Logger.Warn("daily stats: evaluate failed",
					zap.String("owner", owner), zap.String("day", key), zap.Error(err))
			}
			continue
		}
		pnls, err := s.Repo.ListRealizedPLBetween(ctx, owner, from, to)
		if err != nil {
			if s.Logger != nil {
				s.Logger.Warn("daily stats: trade count failed",
					zap.String("owner", owner), zap.String("day", key), zap.Error(err))
			}
			continue
		}
		stat := &models.DisciplineDayStat{
			OwnerID:       owner,
			Day:           day,
			FinalPL:       verdict.FinalPL,
			FullDayPL:     verdict.FullDayPL,
			DisciplinedPL: verdict.DisciplinedPL,
			Impact:        verdict.Impact,
			Greedy:        verdict.Greedy,
			LossBreach:    verdict.LossBreach,
			TradeCount:    len(pnls),
			UpdatedAt:     time.Now().UTC(),
		}
		if err := s.Repo.UpsertDisciplineDayStat(ctx, stat); err != nil {
			if s.Logger != nil {
				s.Logger.Warn("daily stats: upsert failed",
					zap.String("owner", owner), zap.String("day", key), zap.Error(err))
			}
			continue
		}
	}

	if s.Logger != nil {
		s.Logger.Info("daily stats snapshot complete",
			zap.String("day", key), zap.Int("owners", len(owners)))
	}
	return nil
}
