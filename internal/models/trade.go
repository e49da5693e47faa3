package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Trade is one recorded trade outcome. Rows are written by the journaling
// product; this service only reads them as the risk engine's trade source.
type Trade struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	OwnerID   string `gorm:"type:varchar(64);not null;index:idx_trades_owner_executed,priority:1"`
	AccountID string `gorm:"type:varchar(64);index"`

	ExecutedAt time.Time       `gorm:"type:timestamptz;not null;index:idx_trades_owner_executed,priority:2"`
	Instrument string          `gorm:"type:varchar(32)"`
	Side       string          `gorm:"type:varchar(8)"`
	RealizedPL decimal.Decimal `gorm:"column:realized_pl;type:numeric(30,10);not null"`

	Setup string         `gorm:"type:varchar(32)"`
	Notes string         `gorm:"type:text"`
	Tags  datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Trade) TableName() string {
	return "trades"
}
