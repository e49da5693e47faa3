package gormrepository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tradingnotex/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListTradesBetween(ctx context.Context, ownerID string, from, to time.Time) ([]models.Trade, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Trade
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Where("executed_at >= ?", from).
		Where("executed_at < ?", to).
		Order("executed_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListRealizedPLBetween(ctx context.Context, ownerID string, from, to time.Time) ([]decimal.Decimal, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var values []decimal.Decimal
	err := s.db.WithContext(ctx).
		Model(&models.Trade{}).
		Where("owner_id = ?", ownerID).
		Where("executed_at >= ?", from).
		Where("executed_at < ?", to).
		Order("executed_at ASC").
		Pluck("realized_pl", &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (s *Store) ListTradeOwnersBetween(ctx context.Context, from, to time.Time) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var owners []string
	err := s.db.WithContext(ctx).
		Model(&models.Trade{}).
		Where("executed_at >= ?", from).
		Where("executed_at < ?", to).
		Distinct().
		Pluck("owner_id", &owners).Error
	if err != nil {
		return nil, err
	}
	return owners, nil
}

func (s *Store) GetRiskSettings(ctx context.Context, ownerID string) (*models.RiskSettings, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.RiskSettings
	err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpsertRiskSettings(ctx context.Context, item *models.RiskSettings) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"goal_amount", "max_loss_amount", "updated_at",
		}),
	}).Create(item).Error
}

func (s *Store) UpsertDisciplineDayStat(ctx context.Context, item *models.DisciplineDayStat) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"final_pl", "full_day_pl", "disciplined_pl", "impact",
			"greedy", "loss_breach", "trade_count", "updated_at",
		}),
	}).Create(item).Error
}

func (s *Store) ListDisciplineDayStats(ctx context.Context, ownerID string, from, to time.Time) ([]models.DisciplineDayStat, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.DisciplineDayStat
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Where("day >= ?", from).
		Where("day <= ?", to).
		Order("day ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
