package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DisciplineDayStat is a nightly snapshot of one owner's day verdict, written
// by the daily stats job so range analytics don't replay old days on every read.
type DisciplineDayStat struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	OwnerID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_day_stats_owner_day,priority:1"`
	Day     time.Time `gorm:"type:date;not null;uniqueIndex:idx_day_stats_owner_day,priority:2"`

	FinalPL       decimal.Decimal `gorm:"column:final_pl;type:numeric(30,10);not null"`
	FullDayPL     decimal.Decimal `gorm:"column:full_day_pl;type:numeric(30,10);not null"`
	DisciplinedPL decimal.Decimal `gorm:"column:disciplined_pl;type:numeric(30,10);not null"`
	Impact        decimal.Decimal `gorm:"type:numeric(30,10);not null"`

	Greedy     bool `gorm:"not null"`
	LossBreach bool `gorm:"not null"`
	TradeCount int  `gorm:"not null"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (DisciplineDayStat) TableName() string {
	return "discipline_day_stats"
}
