package gormrepo

import (
	"context"
	"time"

	"harimu/internal/adapter/repo/gorm/model"
	"harimu/internal/domain/sim"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OreNodeRepo struct {
	db *gorm.DB
}

func NewOreNodeRepo(db *gorm.DB) OreNodeRepo {
	return OreNodeRepo{db: db}
}

func (r OreNodeRepo) SaveAll(ctx context.Context, nodes []sim.OreSource) error {
	if len(nodes) == 0 {
		return nil
	}
	db := getDBFromCtx(ctx, r.db)
	now := time.Now().UTC()
	for _, n := range nodes {
		row := model.OreNode{
			ID:              n.ID,
			Ore:             string(n.Ore),
			X:               n.Position.X,
			Y:               n.Position.Y,
			Z:               n.Position.Z,
			Capacity:        n.Capacity,
			Current:         n.Current,
			RechargePerTick: n.RechargePerTick,
			UpdatedAt:       now,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"current", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r OreNodeRepo) List(ctx context.Context) ([]sim.OreSource, error) {
	rows := []model.OreNode{}
	if err := getDBFromCtx(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]sim.OreSource, 0, len(rows))
	for _, row := range rows {
		out = append(out, sim.OreSource{
			ID:              row.ID,
			Ore:             sim.OreKind(row.Ore),
			Position:        sim.Position{X: row.X, Y: row.Y, Z: row.Z},
			Capacity:        row.Capacity,
			Current:         row.Current,
			RechargePerTick: row.RechargePerTick,
		})
	}
	return out, nil
}
