package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RiskSettings holds an owner's daily goal and loss-limit defaults, used when
// an evaluation request does not carry explicit amounts.
type RiskSettings struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	OwnerID       string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	GoalAmount    decimal.Decimal `gorm:"type:numeric(30,10);not null"`
	MaxLossAmount decimal.Decimal `gorm:"type:numeric(30,10);not null"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (RiskSettings) TableName() string {
	return "risk_settings"
}
