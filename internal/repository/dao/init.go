package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Teacher{},
		&Student{},
		&Quest{},
		&QuestCompletion{},
		&MarketItem{},
		&Purchase{},
	)
}

// SeedMarketItems inserts items only when market_items is empty, so calling it
// on every start is safe.
func SeedMarketItems(ctx context.Context, db *gorm.DB, items []MarketItem) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&MarketItem{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count market items -> %w", err)
	}

	if count > 0 || len(items) == 0 {
		return 0, nil
	}

	if err := db.WithContext(ctx).Create(&items).Error; err != nil {
		return 0, fmt.Errorf("insert market items -> %w", err)
	}

	return len(items), nil
}
