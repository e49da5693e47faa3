package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"tradingnotex/internal/models"
)

// stubRepo is a test-only in-memory implementation of repository.Repository.
type stubRepo struct {
	trades   []models.Trade
	settings map[string]*models.RiskSettings
	stats    map[string]*models.DisciplineDayStat
}

func (s *stubRepo) ListTradesBetween(ctx context.Context, ownerID string, from, to time.Time) ([]models.Trade, error) {
	var out []models.Trade
	for _, trade := range s.trades {
		if trade.OwnerID != ownerID {
			continue
		}
		if trade.ExecutedAt.Before(from) || !trade.ExecutedAt.Before(to) {
			continue
		}
		out = append(out, trade)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExecutedAt.Before(out[j].ExecutedAt) })
	return out, nil
}

func (s *stubRepo) ListRealizedPLBetween(ctx context.Context, ownerID string, from, to time.Time) ([]decimal.Decimal, error) {
	trades, _ := s.ListTradesBetween(ctx, ownerID, from, to)
	out := make([]decimal.Decimal, 0, len(trades))
	for _, trade := range trades {
		out = append(out, trade.RealizedPL)
	}
	return out, nil
}

func (s *stubRepo) ListTradeOwnersBetween(ctx context.Context, from, to time.Time) ([]string, error) {
	seen := map[string]struct{}{}
	var out []string
	for _, trade := range s.trades {
		if trade.ExecutedAt.Before(from) || !trade.ExecutedAt.Before(to) {
			continue
		}
		if _, ok := seen[trade.OwnerID]; ok {
			continue
		}
		seen[trade.OwnerID] = struct{}{}
		out = append(out, trade.OwnerID)
	}
	sort.Strings(out)
	return out, nil
}

func (s *stubRepo) GetRiskSettings(ctx context.Context, ownerID string) (*models.RiskSettings, error) {
	if s.settings == nil {
		return nil, nil
	}
	return s.settings[ownerID], nil
}

func (s *stubRepo) UpsertRiskSettings(ctx context.Context, item *models.RiskSettings) error {
	if s.settings == nil {
		s.settings = map[string]*models.RiskSettings{}
	}
	s.settings[item.OwnerID] = item
	return nil
}

func (s *stubRepo) UpsertDisciplineDayStat(ctx context.Context, item *models.DisciplineDayStat) error {
	if s.stats == nil {
		s.stats = map[string]*models.DisciplineDayStat{}
	}
	s.stats[item.OwnerID+"/"+item.Day.Format("2006-01-02")] = item
	return nil
}

func (s *stubRepo) ListDisciplineDayStats(ctx context.Context, ownerID string, from, to time.Time) ([]models.DisciplineDayStat, error) {
	var out []models.DisciplineDayStat
	for _, stat := range s.stats {
		if stat.OwnerID != ownerID || stat.Day.Before(from) || stat.Day.After(to) {
			continue
		}
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}
