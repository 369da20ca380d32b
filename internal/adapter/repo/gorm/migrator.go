package gormrepo

import (
	"fmt"

	"harimu/internal/adapter/repo/gorm/model"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.OreNode{},
		&model.Structure{},
		&model.WorldEvent{},
		&model.WorldSnapshot{},
		&model.Wallet{},
		&model.RunState{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
