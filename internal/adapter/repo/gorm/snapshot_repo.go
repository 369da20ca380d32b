package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"harimu/internal/adapter/repo/gorm/model"
	"harimu/internal/app/ports"
	"harimu/internal/domain/sim"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnapshotRepo struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepo {
	return SnapshotRepo{db: db}
}

func (r SnapshotRepo) Save(ctx context.Context, snapshot sim.WorldSnapshot) error {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	row := model.WorldSnapshot{Tick: snapshot.Tick, Payload: b}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tick"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload"}),
	}).Create(&row).Error
}

func (r SnapshotRepo) Latest(ctx context.Context) (sim.WorldSnapshot, error) {
	var row model.WorldSnapshot
	err := getDBFromCtx(ctx, r.db).Order("tick DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sim.WorldSnapshot{}, ports.ErrNotFound
		}
		return sim.WorldSnapshot{}, err
	}
	var out sim.WorldSnapshot
	if err := json.Unmarshal(row.Payload, &out); err != nil {
		return sim.WorldSnapshot{}, err
	}
	return out, nil
}
