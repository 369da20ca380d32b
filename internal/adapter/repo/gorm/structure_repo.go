package gormrepo

import (
	"context"

	"harimu/internal/adapter/repo/gorm/model"
	"harimu/internal/domain/sim"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StructureRepo struct {
	db *gorm.DB
}

func NewStructureRepo(db *gorm.DB) StructureRepo {
	return StructureRepo{db: db}
}

func (r StructureRepo) SaveAll(ctx context.Context, structures []sim.Structure) error {
	if len(structures) == 0 {
		return nil
	}
	rows := make([]model.Structure, 0, len(structures))
	for _, s := range structures {
		rows = append(rows, model.Structure{
			ID:      s.ID,
			Kind:    string(s.Kind),
			X:       s.Position.X,
			Y:       s.Position.Y,
			Z:       s.Position.Z,
			ZoneX:   s.Zone.X,
			ZoneY:   s.Zone.Y,
			ZoneZ:   s.Zone.Z,
			OwnerID: uint64(s.Owner),
		})
	}
	// Structures are immutable once placed; conflicts are re-saves of
	// the same rows.
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&rows).Error
}

func (r StructureRepo) List(ctx context.Context) ([]sim.Structure, error) {
	rows := []model.Structure{}
	if err := getDBFromCtx(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]sim.Structure, 0, len(rows))
	for _, row := range rows {
		out = append(out, sim.Structure{
			ID:       row.ID,
			Kind:     sim.StructureKind(row.Kind),
			Position: sim.Position{X: row.X, Y: row.Y, Z: row.Z},
			Zone:     sim.Zone{X: row.ZoneX, Y: row.ZoneY, Z: row.ZoneZ},
			Owner:    sim.AgentID(row.OwnerID),
		})
	}
	return out, nil
}
