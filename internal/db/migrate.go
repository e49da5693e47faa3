package db

import (
	"tradingnotex/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.Trade{},
		&models.RiskSettings{},
		&models.DisciplineDayStat{},
	)
}
