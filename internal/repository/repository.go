package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"tradingnotex/internal/models"
)

// Repository is the persistence surface the risk services depend on. The
// engine itself never touches it; services fetch trades here and hand the
// engine plain values.
type Repository interface {
	// ListTradesBetween returns an owner's trades with executed_at in
	// [from, to), ordered ascending by executed_at.
	ListTradesBetween(ctx context.Context, ownerID string, from, to time.Time) ([]models.Trade, error)
	// ListRealizedPLBetween returns just the realized P&L column for the same
	// window and ordering.
	ListRealizedPLBetween(ctx context.Context, ownerID string, from, to time.Time) ([]decimal.Decimal, error)
	// ListTradeOwnersBetween returns the distinct owners with at least one
	// trade in [from, to).
	ListTradeOwnersBetween(ctx context.Context, from, to time.Time) ([]string, error)

	GetRiskSettings(ctx context.Context, ownerID string) (*models.RiskSettings, error)
	UpsertRiskSettings(ctx context.Context, item *models.RiskSettings) error

	UpsertDisciplineDayStat(ctx context.Context, item *models.DisciplineDayStat) error
	ListDisciplineDayStats(ctx context.Context, ownerID string, from, to time.Time) ([]models.DisciplineDayStat, error)
}
