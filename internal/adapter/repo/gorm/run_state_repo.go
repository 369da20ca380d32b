package gormrepo

import (
	"context"
	"errors"

	"harimu/internal/adapter/repo/gorm/model"
	"harimu/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// runStateRowID pins the single run-state row.
const runStateRowID = 1

type RunStateRepo struct {
	db *gorm.DB
}

func NewRunStateRepo(db *gorm.DB) RunStateRepo {
	return RunStateRepo{db: db}
}

func (r RunStateRepo) Get(ctx context.Context) (ports.RunStateRecord, error) {
	var row model.RunState
	err := getDBFromCtx(ctx, r.db).Where("id = ?", runStateRowID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.RunStateRecord{}, ports.ErrNotFound
		}
		return ports.RunStateRecord{}, err
	}
	return ports.RunStateRecord{
		Status:    row.Status,
		LastTick:  row.LastTick,
		InfusedQi: row.InfusedQi,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r RunStateRepo) Save(ctx context.Context, state ports.RunStateRecord) error {
	row := model.RunState{
		ID:        runStateRowID,
		Status:    state.Status,
		LastTick:  state.LastTick,
		InfusedQi: state.InfusedQi,
		UpdatedAt: state.UpdatedAt,
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "last_tick", "infused_qi", "updated_at"}),
	}).Create(&row).Error
}
