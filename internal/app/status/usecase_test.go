package status

import (
	"context"
	"testing"

	"harimu/internal/adapter/repo/memory"
	"harimu/internal/app/ports"
	"harimu/internal/app/run"
	"harimu/internal/domain/sim"
)

type idlePlanner struct{}

func (idlePlanner) PlanAction(context.Context, ports.PlannerView) (sim.Action, error) {
	return sim.IdleAction(), nil
}

func TestExecuteReportsWorldCounts(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	deps := run.Deps{
		TxManager:  memory.NewTxManager(),
		OreNodes:   memory.NewOreNodeRepo(store),
		Structures: memory.NewStructureRepo(store),
		Events:     memory.NewEventRepo(store),
		Snapshots:  memory.NewSnapshotRepo(store),
		RunState:   memory.NewRunStateRepo(store),
		Planner:    idlePlanner{},
	}
	if err := deps.RunState.Save(ctx, ports.RunStateRecord{InfusedQi: 64}); err != nil {
		t.Fatalf("save run state: %v", err)
	}

	r := run.NewRunner(deps)
	if err := r.Seed(ctx, []run.AgentSeed{
		{Name: "alive", Qi: 10},
		{Name: "brief", Qi: 10, Position: sim.Position{X: 3}, MaxAge: 1},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := r.StepOnce(ctx); err != nil {
		t.Fatalf("step: %v", err)
	}

	resp, err := UseCase{Runner: r, RunState: deps.RunState}.Execute(ctx)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if resp.Status != run.StatusRunning || resp.Tick != 1 {
		t.Fatalf("status/tick = %s/%d", resp.Status, resp.Tick)
	}
	if resp.AgentsLive != 1 || resp.AgentsDead != 1 {
		t.Fatalf("live/dead = %d/%d, want 1/1", resp.AgentsLive, resp.AgentsDead)
	}
	if resp.InfusedQi != 64 {
		t.Fatalf("infused qi = %d, want 64", resp.InfusedQi)
	}
}
