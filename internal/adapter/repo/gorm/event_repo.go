package gormrepo

import (
	"context"
	"encoding/json"

	"harimu/internal/adapter/repo/gorm/model"
	"harimu/internal/app/ports"
	"harimu/internal/domain/sim"

	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, tick uint64, events []sim.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.WorldEvent, 0, len(events))
	for i, e := range events {
		b, _ := json.Marshal(e)
		rows = append(rows, model.WorldEvent{
			Tick:    tick,
			Seq:     i,
			Kind:    string(e.Kind),
			AgentID: uint64(e.AgentID),
			Payload: b,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListRecent(ctx context.Context, agentID sim.AgentID, limit int) ([]ports.TickEvent, error) {
	query := getDBFromCtx(ctx, r.db).Order("tick DESC, seq DESC")
	if agentID != 0 {
		id := uint64(agentID)
		query = query.Where(
			"agent_id = ? OR (payload->>'parent_a')::bigint = ? OR (payload->>'parent_b')::bigint = ? OR (payload->>'child_id')::bigint = ?",
			id, id, id, id,
		)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	rows := []model.WorldEvent{}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.TickEvent, 0, len(rows))
	for _, row := range rows {
		var e sim.Event
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &e)
		}
		out = append(out, ports.TickEvent{Tick: row.Tick, Seq: row.Seq, Event: e})
	}
	return out, nil
}
