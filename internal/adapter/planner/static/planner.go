package staticplanner

import (
	"context"

	"harimu/internal/app/ports"
	"harimu/internal/domain/sim"
)

// Planner is the deterministic default: harvest when standing next to
// a usable node, otherwise walk toward the nearest one, otherwise
// scan. It never spends Qi it does not have.
type Planner struct{}

func (Planner) PlanAction(_ context.Context, view ports.PlannerView) (sim.Action, error) {
	agent := view.Agent
	if agent.Qi == 0 {
		return sim.IdleAction(), nil
	}

	if src, ok := usableSourceWithin(view, sim.HarvestRange); ok {
		return sim.HarvestAction(src.Ore, src.ID), nil
	}
	if src, ok := usableSourceWithin(view, sim.ScanRange); ok {
		return moveToward(agent.Position, src.Position), nil
	}
	return sim.ScanAction(), nil
}

func usableSourceWithin(view ports.PlannerView, rng int32) (sim.OreSourceSnapshot, bool) {
	best := sim.OreSourceSnapshot{}
	bestDist := int32(-1)
	for _, src := range view.OreSources {
		if src.Available < sim.HarvestPerAction {
			continue
		}
		if !view.Agent.Position.WithinRange(src.Position, rng) {
			continue
		}
		dist := view.Agent.Position.ManhattanDistance(src.Position)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = src
		}
	}
	return best, bestDist >= 0
}

func moveToward(from, to sim.Position) sim.Action {
	return sim.MoveAction(
		clampDelta(to.X-from.X),
		clampDelta(to.Y-from.Y),
		clampDelta(to.Z-from.Z),
	)
}

func clampDelta(d int32) int32 {
	if d > sim.MaxMoveRadius {
		return sim.MaxMoveRadius
	}
	if d < -sim.MaxMoveRadius {
		return -sim.MaxMoveRadius
	}
	return d
}
